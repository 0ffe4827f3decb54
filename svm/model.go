package svm

import (
	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/kernel"
	"github.com/sharnoff/supervised/tensor"
)

// Model is a frozen margin classifier: the pruned support vectors, their dual
// coefficients folded with their labels, a bias, and the Kernel used at
// training time. Models are immutable and safe for concurrent prediction.
type Model struct {
	kern   kernel.Kernel
	svs    []tensor.Vector
	coeffs []float64 // alpha_i * y_i
	bias   float64
	dims   int

	// set when every training label was identical
	constant   bool
	constLabel float64
}

// Dims returns the input dimension the Model was trained with.
func (m *Model) Dims() int {
	return m.dims
}

// NumSupportVectors returns the number of training points retained after
// pruning effectively-zero coefficients.
func (m *Model) NumSupportVectors() int {
	return len(m.svs)
}

// Bias returns the decision function's constant term.
func (m *Model) Bias() float64 {
	return m.bias
}

// Kernel returns the Kernel the Model was trained with.
func (m *Model) Kernel() kernel.Kernel {
	return m.kern
}

// Decision returns the raw margin value of the decision function at features,
// before taking its sign. A DimensionMismatchError is returned if features has
// the wrong length.
func (m *Model) Decision(features []float64) (float64, error) {
	if len(features) != m.dims {
		return 0, supervised.DimensionMismatchError{Expected: m.dims, Got: len(features), Context: "prediction inputs"}
	}

	if m.constant {
		return m.constLabel, nil
	}

	x := tensor.NewVector(features)
	sum := m.bias
	for i, sv := range m.svs {
		k, err := m.kern.Evaluate(sv, x)
		if err != nil {
			return 0, err
		}

		sum += m.coeffs[i] * k
	}

	return sum, nil
}

// Predict classifies features as a single label of +1 or -1, with a
// non-positive margin mapping to -1.
func (m *Model) Predict(features []float64) ([]float64, error) {
	d, err := m.Decision(features)
	if err != nil {
		return nil, err
	}

	if d > 0 {
		return []float64{1}, nil
	}

	return []float64{-1}, nil
}
