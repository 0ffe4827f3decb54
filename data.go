package supervised

import (
	"github.com/pkg/errors"
)

// Datum is a single labeled example: a feature vector paired with the target it
// should map to. For margin classifiers the target is a single value of ±1; for
// networks it is the expected output vector.
type Datum struct {
	Inputs  []float64
	Targets []float64
}

// Dataset is an ordered, validated collection of labeled examples. Every example
// shares the same input dimension and the same target dimension. A Dataset is
// immutable once constructed; trainers receive their own copy of each example on
// access.
type Dataset struct {
	data       []Datum
	dims       int
	targetDims int
}

// Data validates and wraps a slice of examples as a Dataset. The examples are
// copied, so the caller may freely reuse the provided slices afterwards. There
// are several error conditions:
//	(0) If there are no examples: ErrEmptyDataset,
//	(1) If any example's input length differs from the first: type DimensionMismatchError,
//	(2) If any example's target length differs from the first: type DimensionMismatchError.
func Data(examples []Datum) (Dataset, error) {
	if len(examples) == 0 {
		return Dataset{}, ErrEmptyDataset
	}

	dims := len(examples[0].Inputs)
	targetDims := len(examples[0].Targets)
	if dims == 0 {
		return Dataset{}, errors.Errorf("example 0 has no input values")
	}

	data := make([]Datum, len(examples))
	for i, ex := range examples {
		if len(ex.Inputs) != dims {
			return Dataset{}, DimensionMismatchError{dims, len(ex.Inputs), "dataset inputs"}
		} else if len(ex.Targets) != targetDims {
			return Dataset{}, DimensionMismatchError{targetDims, len(ex.Targets), "dataset targets"}
		}

		data[i] = Datum{
			Inputs:  append([]float64(nil), ex.Inputs...),
			Targets: append([]float64(nil), ex.Targets...),
		}
	}

	return Dataset{data: data, dims: dims, targetDims: targetDims}, nil
}

// DataFrom builds a Dataset from parallel input and target slices. It is a
// convenience wrapper around Data; inputs and targets must have equal length.
func DataFrom(inputs, targets [][]float64) (Dataset, error) {
	if len(inputs) != len(targets) {
		return Dataset{}, errors.Errorf("inputs and targets differ in length (%d != %d)", len(inputs), len(targets))
	}

	examples := make([]Datum, len(inputs))
	for i := range inputs {
		examples[i] = Datum{Inputs: inputs[i], Targets: targets[i]}
	}

	return Data(examples)
}

// Len returns the number of examples in the Dataset.
func (ds Dataset) Len() int {
	return len(ds.data)
}

// Dims returns the input dimension shared by every example.
func (ds Dataset) Dims() int {
	return ds.dims
}

// TargetDims returns the target dimension shared by every example.
func (ds Dataset) TargetDims() int {
	return ds.targetDims
}

// At returns a copy of the example at index i. The copy can be modified freely
// without affecting the Dataset.
func (ds Dataset) At(i int) Datum {
	d := ds.data[i]
	return Datum{
		Inputs:  append([]float64(nil), d.Inputs...),
		Targets: append([]float64(nil), d.Targets...),
	}
}

// Inputs returns the raw input slice of example i without copying. The slice
// must not be modified; it is shared with the Dataset.
func (ds Dataset) Inputs(i int) []float64 {
	return ds.data[i].Inputs
}

// Targets returns the raw target slice of example i without copying. The slice
// must not be modified; it is shared with the Dataset.
func (ds Dataset) Targets(i int) []float64 {
	return ds.data[i].Targets
}
