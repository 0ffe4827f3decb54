// Package loss provides the cost functions available to network training.
package loss

import "math"

// Function is the contract shared by every cost function. For both methods,
// implementations may assume the slices are equal in length and free of NaNs
// and Infs.
type Function interface {
	// Cost returns the aggregate cost of outs against targets.
	Cost(outs, targets []float64) float64

	// Derivs returns the derivative of the cost with respect to each output.
	Derivs(outs, targets []float64) []float64

	TypeString() string
}

type mse int8

// MSE returns the mean squared error cost function, the default for network
// training.
func MSE() mse {
	return mse(0)
}

func (mse) TypeString() string {
	return "mse"
}

func (mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum += 0.5 * math.Pow(outs[i]-targets[i], 2)
	}

	return sum / float64(len(outs))
}

func (mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = outs[i] - targets[i]
	}

	return ds
}

type abs int8

// Abs returns the mean absolute error cost function.
func Abs() abs {
	return abs(0)
}

func (abs) TypeString() string {
	return "abs"
}

func (abs) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum += math.Abs(outs[i] - targets[i])
	}

	return sum / float64(len(outs))
}

func (abs) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		if outs[i] > targets[i] {
			ds[i] = 1
		} else if outs[i] < targets[i] {
			ds[i] = -1
		}
	}

	return ds
}
