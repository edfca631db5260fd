package model

// Record is a supervised training sample.
type Record struct {
	input []float64
	ideal []float64
}

// NewRecord creates a new record from copies of the given vectors.
func NewRecord(input, ideal []float64) Record {
	in := make([]float64, len(input))
	copy(in, input)
	id := make([]float64, len(ideal))
	copy(id, ideal)
	return Record{
		input: in,
		ideal: id,
	}
}

// Input returns the input vector of the record.
func (r Record) Input() []float64 {
	return r.input
}

// Ideal returns the expected output of the record.
func (r Record) Ideal() []float64 {
	return r.ideal
}

// Split returns the inputs and ideals of the given records as separate matrices.
func Split(records []Record) (x [][]float64, y [][]float64) {
	x = make([][]float64, len(records))
	y = make([][]float64, len(records))
	for i, r := range records {
		x[i] = r.input
		y[i] = r.ideal
	}
	return x, y
}
