package ffnet

import (
	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/tensor"
)

// frozenLayer pairs a weight matrix (rows = units, columns = inputs + bias)
// with its activation.
type frozenLayer struct {
	weights tensor.Matrix
	act     Activation
}

// Model is a trained network: an ordered sequence of frozen weight layers.
// Models are immutable and safe for concurrent prediction.
type Model struct {
	layers []frozenLayer
	dims   int
}

// frozen copies the trainer's working weights into an immutable Model. The
// trainer's buffers are left behind, so the Model holds no mutable alias.
func frozen(layers []layer, dims int) *Model {
	fl := make([]frozenLayer, len(layers))
	for l, lyr := range layers {
		rows, cols := len(lyr.weights), len(lyr.weights[0])
		flat := make([]float64, 0, rows*cols)
		for _, w := range lyr.weights {
			flat = append(flat, w...)
		}

		// shape is correct by construction
		m, _ := tensor.NewMatrix(rows, cols, flat)
		fl[l] = frozenLayer{weights: m, act: lyr.act}
	}

	return &Model{layers: fl, dims: dims}
}

// Dims returns the input dimension the Model was trained with.
func (m *Model) Dims() int {
	return m.dims
}

// NumLayers returns the number of weight layers.
func (m *Model) NumLayers() int {
	return len(m.layers)
}

// Predict performs a single forward pass through the frozen weights and
// returns the output-layer activations. A DimensionMismatchError is returned
// if features has the wrong length.
func (m *Model) Predict(features []float64) ([]float64, error) {
	if len(features) != m.dims {
		return nil, supervised.DimensionMismatchError{Expected: m.dims, Got: len(features), Context: "prediction inputs"}
	}

	in := features
	for _, lyr := range m.layers {
		aug := make([]float64, len(in)+1)
		copy(aug, in)
		aug[len(in)] = 1 // bias input

		sums, err := lyr.weights.MulVec(tensor.NewVector(aug))
		if err != nil {
			return nil, err
		}

		in = sums.Map(lyr.act.apply).Raw()
	}

	return in, nil
}
