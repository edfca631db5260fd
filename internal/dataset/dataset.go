package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/drakos74/free-rbf/internal/math/encoding"
	"github.com/drakos74/free-rbf/internal/model"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmpty  = errors.New("empty data set")
	ErrColumn = errors.New("invalid column")
)

// DataSet holds the rows of a delimited text file.
type DataSet struct {
	headers []string
	rows    [][]string
}

// Load reads a delimited data set with a header row.
func Load(r io.Reader) (*DataSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read data set: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no records found: %w", ErrEmpty)
	}

	ds := &DataSet{
		headers: records[0],
		rows:    make([][]string, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		// skip blank trailing lines
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		ds.rows = append(ds.rows, record)
	}
	if len(ds.rows) == 0 {
		return nil, fmt.Errorf("no records found: %w", ErrEmpty)
	}

	log.Info().
		Strs("headers", ds.headers).
		Int("rows", len(ds.rows)).
		Msg("loaded data set")

	return ds, nil
}

// Headers returns the column names.
func (ds *DataSet) Headers() []string {
	return ds.headers
}

// Size returns the number of rows.
func (ds *DataSet) Size() int {
	return len(ds.rows)
}

// Column returns the numeric values of the given column.
func (ds *DataSet) Column(col int) ([]float64, error) {
	if err := ds.check(col); err != nil {
		return nil, err
	}
	values := make([]float64, len(ds.rows))
	for i, row := range ds.rows {
		f, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse value at row %d for column '%s': %w", i, ds.headers[col], err)
		}
		values[i] = f
	}
	return values, nil
}

// Normalize scales the values of the column into [0,1].
// A constant column is mapped to 0.
func (ds *DataSet) Normalize(col int) error {
	values, err := ds.Column(col)
	if err != nil {
		return err
	}
	low, high := values[0], values[0]
	for _, v := range values {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	for i, v := range values {
		n := 0.0
		if high > low {
			n = (v - low) / (high - low)
		}
		ds.rows[i][col] = strconv.FormatFloat(n, 'g', -1, 64)
	}
	log.Debug().
		Str("column", ds.headers[col]).
		Float64("low", low).
		Float64("high", high).
		Msg("normalized column")
	return nil
}

// EncodeEquilateral replaces the class column by its equilateral encoding.
// The column is expanded to n-1 columns for n classes, named <header>-<i>.
func (ds *DataSet) EncodeEquilateral(col int) (*Classes, error) {
	if err := ds.check(col); err != nil {
		return nil, err
	}
	classes := NewClasses()
	for _, row := range ds.rows {
		classes.Add(strings.TrimSpace(row[col]))
	}

	eq, err := encoding.NewEquilateral(classes.Len())
	if err != nil {
		return nil, fmt.Errorf("could not encode column '%s': %w", ds.headers[col], err)
	}

	width := classes.Len() - 1
	name := ds.headers[col]

	headers := make([]string, 0, len(ds.headers)+width-1)
	headers = append(headers, ds.headers[:col]...)
	for i := 0; i < width; i++ {
		headers = append(headers, fmt.Sprintf("%s-%d", name, i))
	}
	headers = append(headers, ds.headers[col+1:]...)
	ds.headers = headers

	for r, row := range ds.rows {
		index, _ := classes.Index(strings.TrimSpace(row[col]))
		newRow := make([]string, 0, len(row)+width-1)
		newRow = append(newRow, row[:col]...)
		for _, v := range eq.Encode(index) {
			newRow = append(newRow, strconv.FormatFloat(v, 'g', -1, 64))
		}
		newRow = append(newRow, row[col+1:]...)
		ds.rows[r] = newRow
	}

	log.Info().
		Str("column", name).
		Strs("classes", classes.Names()).
		Msg("encoded classes")

	return classes, nil
}

// ExtractSupervised creates the training records from the given column ranges.
func (ds *DataSet) ExtractSupervised(inputStart, inputs, idealStart, ideals int) ([]model.Record, error) {
	if inputs < 1 || ideals < 1 {
		return nil, fmt.Errorf("no columns selected [ %d | %d ]: %w", inputs, ideals, ErrColumn)
	}
	if err := ds.check(inputStart, inputStart+inputs-1, idealStart, idealStart+ideals-1); err != nil {
		return nil, err
	}
	records := make([]model.Record, len(ds.rows))
	input := make([]float64, inputs)
	ideal := make([]float64, ideals)
	for i, row := range ds.rows {
		for j := 0; j < inputs; j++ {
			f, err := ds.parse(row, inputStart+j)
			if err != nil {
				return nil, fmt.Errorf("could not parse input at row %d: %w", i, err)
			}
			input[j] = f
		}
		for j := 0; j < ideals; j++ {
			f, err := ds.parse(row, idealStart+j)
			if err != nil {
				return nil, fmt.Errorf("could not parse ideal at row %d: %w", i, err)
			}
			ideal[j] = f
		}
		records[i] = model.NewRecord(input, ideal)
	}
	return records, nil
}

func (ds *DataSet) parse(row []string, col int) (float64, error) {
	if col >= len(row) {
		return 0, fmt.Errorf("missing value for column %d: %w", col, ErrColumn)
	}
	return strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
}

func (ds *DataSet) check(cols ...int) error {
	for _, col := range cols {
		if col < 0 || col >= len(ds.headers) {
			return fmt.Errorf("column %d not in [0,%d): %w", col, len(ds.headers), ErrColumn)
		}
	}
	return nil
}
