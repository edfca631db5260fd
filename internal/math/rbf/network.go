package rbf

// Network is a radial basis function network.
// All trainable parameters live in one flat vector, the long term memory,
// laid out as [ input weights | rbf parameters | output weights ].
type Network struct {
	inputs       int
	outputs      int
	indexInputs  int
	indexOutputs int
	memory       []float64
	rbfs         []Gaussian
}

// Size returns the length of the long term memory for the given dimensions.
func Size(inputs, rbfs, outputs int) int {
	inputWeights := inputs * rbfs
	// +1 for the bias rbf
	outputWeights := outputs * (rbfs + 1)
	// width and centers for each rbf
	rbfParams := (inputs + 1) * rbfs
	return inputWeights + outputWeights + rbfParams
}

// NewNetwork creates a new network with zeroed parameters.
func NewNetwork(inputs, rbfs, outputs int) *Network {
	inputWeights := inputs * rbfs
	rbfParams := (inputs + 1) * rbfs
	n := &Network{
		inputs:       inputs,
		outputs:      outputs,
		indexInputs:  0,
		indexOutputs: inputWeights + rbfParams,
		memory:       make([]float64, Size(inputs, rbfs, outputs)),
		rbfs:         make([]Gaussian, rbfs),
	}
	for i := 0; i < rbfs; i++ {
		index := inputWeights + (inputs+1)*i
		n.rbfs[i] = newGaussian(inputs, index, n.LongTermMemory)
	}
	return n
}

// LongTermMemory returns the parameter vector of the network.
// It is NOT a copy, callers can replace the parameters in place.
func (n *Network) LongTermMemory() []float64 {
	return n.memory
}

// Inputs returns the number of inputs.
func (n *Network) Inputs() int {
	return n.inputs
}

// RBFs returns the number of radial basis functions.
func (n *Network) RBFs() int {
	return len(n.rbfs)
}

// Outputs returns the number of outputs.
func (n *Network) Outputs() int {
	return n.outputs
}

// Size returns the length of the long term memory.
func (n *Network) Size() int {
	return len(n.memory)
}

// RBF returns the i-th radial basis function.
func (n *Network) RBF(i int) Gaussian {
	return n.rbfs[i]
}

// InputWeight returns the index of the weight for the given rbf and input.
func (n *Network) InputWeight(rbf, input int) int {
	return n.indexInputs + rbf*n.inputs + input
}

// OutputWeight returns the index of the weight for the given output and rbf.
// rbf == RBFs() addresses the bias.
func (n *Network) OutputWeight(output, rbf int) int {
	return n.indexOutputs + output*(len(n.rbfs)+1) + rbf
}

// ComputeRegression runs the input through the network.
func (n *Network) ComputeRegression(input []float64) []float64 {
	rbfOutput := make([]float64, len(n.rbfs)+1)
	// bias
	rbfOutput[len(n.rbfs)] = 1

	weighted := make([]float64, len(input))
	for i, rbf := range n.rbfs {
		for j := range input {
			weighted[j] = input[j] * n.memory[n.InputWeight(i, j)]
		}
		rbfOutput[i] = rbf.Evaluate(weighted)
	}

	output := make([]float64, n.outputs)
	for k := range output {
		sum := 0.0
		for j, r := range rbfOutput {
			sum += r * n.memory[n.OutputWeight(k, j)]
		}
		output[k] = sum
	}
	return output
}
