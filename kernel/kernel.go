// Package kernel provides the similarity measures used by margin classifiers.
//
// A Kernel is a stateless strategy value: a tagged variant carrying its own
// parameters, fixed at construction. Parameters are set with chainable methods
// that return a modified copy, so a configured Kernel can be shared freely:
//
//		k := kernel.HyperTan().Gain(100)
//
// Every variant is symmetric: Evaluate(a, b) == Evaluate(b, a) for all equal
// length vectors.
package kernel

import (
	"math"

	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/tensor"
)

type variant int8

const (
	linear variant = iota
	polynomial
	hyperTan
	rbf
)

// Kernel is a pure function of two equal-length feature vectors returning a
// scalar similarity. The zero Kernel is the linear kernel.
type Kernel struct {
	v variant

	// polynomial: (gamma * <a,b> + coef0)^degree
	degree, gamma, coef0 float64

	// hyperTan: tanh(gain * <a,b> + offset)
	gain, offset float64

	// rbf: exp(-width * |a-b|^2)
	width float64
}

// Linear returns the plain inner-product kernel: <a, b>.
func Linear() Kernel {
	return Kernel{v: linear}
}

// Polynomial returns the kernel (gamma * <a,b> + coef0)^degree with the given
// degree. gamma defaults to 1 and coef0 to 1; both can be set with Gamma and
// Coef0.
func Polynomial(degree float64) Kernel {
	return Kernel{v: polynomial, degree: degree, gamma: 1, coef0: 1}
}

// HyperTan returns the kernel tanh(gain * <a,b> + offset). gain defaults to 1
// and offset to 0; both can be set with Gain and Offset.
func HyperTan() Kernel {
	return Kernel{v: hyperTan, gain: 1, offset: 0}
}

// RBF returns the radial-basis kernel exp(-width * |a-b|^2). width defaults to
// 1 and can be set with Width.
func RBF() Kernel {
	return Kernel{v: rbf, width: 1}
}

// Gamma sets the inner-product scale of a Polynomial kernel, returning the
// modified Kernel. It has no effect on other variants.
func (k Kernel) Gamma(gamma float64) Kernel {
	k.gamma = gamma
	return k
}

// Coef0 sets the additive constant of a Polynomial kernel, returning the
// modified Kernel. It has no effect on other variants.
func (k Kernel) Coef0(coef0 float64) Kernel {
	k.coef0 = coef0
	return k
}

// Gain sets the inner-product scale of a HyperTan kernel, returning the
// modified Kernel. It has no effect on other variants.
func (k Kernel) Gain(gain float64) Kernel {
	k.gain = gain
	return k
}

// Offset sets the additive constant of a HyperTan kernel, returning the
// modified Kernel. It has no effect on other variants.
func (k Kernel) Offset(offset float64) Kernel {
	k.offset = offset
	return k
}

// Width sets the exponent scale of an RBF kernel, returning the modified
// Kernel. It has no effect on other variants.
func (k Kernel) Width(width float64) Kernel {
	k.width = width
	return k
}

// TypeString returns the name of the Kernel's variant.
func (k Kernel) TypeString() string {
	switch k.v {
	case polynomial:
		return "polynomial"
	case hyperTan:
		return "hypertan"
	case rbf:
		return "rbf"
	default:
		return "linear"
	}
}

// Evaluate returns the similarity of a and b under the Kernel's variant. A
// DimensionMismatchError is returned if the vectors differ in length.
func (k Kernel) Evaluate(a, b tensor.Vector) (float64, error) {
	if a.Len() != b.Len() {
		return 0, supervised.DimensionMismatchError{Expected: a.Len(), Got: b.Len(), Context: "kernel operands"}
	}

	switch k.v {
	case polynomial:
		dot, _ := a.Dot(b)
		return math.Pow(k.gamma*dot+k.coef0, k.degree), nil

	case hyperTan:
		dot, _ := a.Dot(b)
		return math.Tanh(k.gain*dot + k.offset), nil

	case rbf:
		diff, _ := a.Sub(b)
		sq, _ := diff.Dot(diff)
		return math.Exp(-k.width * sq), nil

	default:
		return a.Dot(b)
	}
}
