package loss

import (
	"math"
	"testing"
)

func TestMSE(t *testing.T) {
	m := MSE()

	outs := []float64{1, 0}
	targets := []float64{0, 0}

	if got := m.Cost(outs, targets); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Cost gave %v, expected 0.25", got)
	}

	ds := m.Derivs(outs, targets)
	if ds[0] != 1 || ds[1] != 0 {
		t.Errorf("Derivs gave %v", ds)
	}

	if got := m.Cost(targets, targets); got != 0 {
		t.Errorf("Cost of exact match is %v", got)
	}
}

func TestAbs(t *testing.T) {
	a := Abs()

	outs := []float64{2, -1}
	targets := []float64{1, 1}

	if got := a.Cost(outs, targets); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("Cost gave %v, expected 1.5", got)
	}

	ds := a.Derivs(outs, targets)
	if ds[0] != 1 || ds[1] != -1 {
		t.Errorf("Derivs gave %v", ds)
	}

	if ds := a.Derivs([]float64{1}, []float64{1}); ds[0] != 0 {
		t.Errorf("Derivs at a match gave %v", ds[0])
	}
}
