package ffnet

import "math"

// Activation is a tagged variant selecting the elementwise nonlinearity applied
// by every layer. The zero value is Logistic.
type Activation int8

const (
	// Logistic is the sigmoid 1 / (1 + e^-x), with outputs in (0, 1).
	Logistic Activation = iota

	// Tanh is the hyperbolic tangent, with outputs in (-1, 1).
	Tanh

	// Identity applies no nonlinearity, for linear output layers.
	Identity

	// ReLU is max(0, x).
	ReLU
)

// TypeString returns the name of the Activation's variant.
func (a Activation) TypeString() string {
	switch a {
	case Tanh:
		return "tanh"
	case Identity:
		return "identity"
	case ReLU:
		return "relu"
	default:
		return "logistic"
	}
}

func (a Activation) apply(x float64) float64 {
	switch a {
	case Tanh:
		return math.Tanh(x)
	case Identity:
		return x
	case ReLU:
		if x < 0 {
			return 0
		}
		return x
	default:
		return 1 / (1 + math.Exp(-x))
	}
}

// deriv is the activation's derivative expressed in terms of its output, which
// every supported variant admits.
func (a Activation) deriv(out float64) float64 {
	switch a {
	case Tanh:
		return 1 - out*out
	case Identity:
		return 1
	case ReLU:
		if out > 0 {
			return 1
		}
		return 0
	default:
		return out * (1 - out)
	}
}
