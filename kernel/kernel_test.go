package kernel

import (
	"math"
	"testing"

	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/tensor"
)

func kernels() map[string]Kernel {
	return map[string]Kernel{
		"linear":     Linear(),
		"polynomial": Polynomial(3).Gamma(0.5).Coef0(2),
		"hypertan":   HyperTan().Gain(0.1).Offset(0.5),
		"rbf":        RBF().Width(0.25),
	}
}

func TestSymmetry(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{-1, 0.5, 2}, {3, -2, 0}},
		{{0, 0}, {0, 0}},
		{{1e3, -1e3}, {-1e3, 1e3}},
	}

	for name, k := range kernels() {
		for _, p := range pairs {
			a, b := tensor.NewVector(p[0]), tensor.NewVector(p[1])

			ab, err := k.Evaluate(a, b)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}
			ba, err := k.Evaluate(b, a)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}

			if math.Abs(ab-ba) > 1e-12 {
				t.Errorf("%s is asymmetric on %v, %v: %v != %v", name, p[0], p[1], ab, ba)
			}
		}
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := tensor.NewVector([]float64{1, 2})
	b := tensor.NewVector([]float64{1, 2, 3})

	for name, k := range kernels() {
		if _, err := k.Evaluate(a, b); err == nil {
			t.Errorf("%s accepted mismatched vectors", name)
		} else if _, ok := err.(supervised.DimensionMismatchError); !ok {
			t.Errorf("%s returned %T, expected DimensionMismatchError", name, err)
		}
	}
}

func TestLinearValues(t *testing.T) {
	a := tensor.NewVector([]float64{1, 2})
	b := tensor.NewVector([]float64{3, 4})

	got, err := Linear().Evaluate(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 11 {
		t.Errorf("expected 11, got %v", got)
	}
}

func TestHyperTanValues(t *testing.T) {
	a := tensor.NewVector([]float64{1, 2})
	b := tensor.NewVector([]float64{3, 4})

	// tanh(gain * <a,b> + offset)
	k := HyperTan().Gain(0.05).Offset(0.25)
	got, err := k.Evaluate(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := math.Tanh(0.05*11 + 0.25)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPolynomialValues(t *testing.T) {
	a := tensor.NewVector([]float64{1, 2})
	b := tensor.NewVector([]float64{3, 4})

	got, err := Polynomial(2).Gamma(1).Coef0(1).Evaluate(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 144 { // (11 + 1)^2
		t.Errorf("expected 144, got %v", got)
	}
}

func TestRBFValues(t *testing.T) {
	a := tensor.NewVector([]float64{1, 0})
	b := tensor.NewVector([]float64{0, 1})

	got, err := RBF().Width(0.5).Evaluate(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := math.Exp(-0.5 * 2) // |a-b|^2 = 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}

	// identical points have maximal similarity
	same, err := RBF().Evaluate(a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same != 1 {
		t.Errorf("RBF(a, a) = %v, expected 1", same)
	}
}

func TestTypeStrings(t *testing.T) {
	for want, k := range kernels() {
		if got := k.TypeString(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
