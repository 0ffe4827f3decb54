package tensor

import (
	"math"
	"testing"

	"github.com/sharnoff/supervised"
)

func TestVectorOps(t *testing.T) {
	a := NewVector([]float64{1, 2, 3})
	b := NewVector([]float64{4, 5, 6})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sum.Raw(); got[0] != 5 || got[1] != 7 || got[2] != 9 {
		t.Errorf("Add gave %v", got)
	}

	diff, err := b.Sub(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := diff.Raw(); got[0] != 3 || got[1] != 3 || got[2] != 3 {
		t.Errorf("Sub gave %v", got)
	}

	prod, err := a.MulElem(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := prod.Raw(); got[0] != 4 || got[1] != 10 || got[2] != 18 {
		t.Errorf("MulElem gave %v", got)
	}

	dot, err := a.Dot(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dot != 32 {
		t.Errorf("Dot gave %v", dot)
	}

	if got := a.Scale(2).Raw(); got[0] != 2 || got[1] != 4 || got[2] != 6 {
		t.Errorf("Scale gave %v", got)
	}

	if got := a.Map(func(x float64) float64 { return x * x }).Raw(); got[2] != 9 {
		t.Errorf("Map gave %v", got)
	}
}

func TestVectorOpsArePure(t *testing.T) {
	src := []float64{1, 2}
	a := NewVector(src)
	b := NewVector([]float64{10, 20})

	src[0] = 99 // NewVector must have copied

	if _, err := a.Add(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := a.Raw(); got[0] != 1 || got[1] != 2 {
		t.Errorf("operand was modified: %v", got)
	}
}

func TestVectorDimensionMismatch(t *testing.T) {
	a := NewVector([]float64{1, 2})
	b := NewVector([]float64{1, 2, 3})

	if _, err := a.Add(b); !isMismatch(err) {
		t.Errorf("Add: expected DimensionMismatchError, got %v", err)
	}
	if _, err := a.Sub(b); !isMismatch(err) {
		t.Errorf("Sub: expected DimensionMismatchError, got %v", err)
	}
	if _, err := a.MulElem(b); !isMismatch(err) {
		t.Errorf("MulElem: expected DimensionMismatchError, got %v", err)
	}
	if _, err := a.Dot(b); !isMismatch(err) {
		t.Errorf("Dot: expected DimensionMismatchError, got %v", err)
	}
}

func TestMatrixOps(t *testing.T) {
	m, err := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := m.MulVec(NewVector([]float64{1, 1, 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Raw(); got[0] != 6 || got[1] != 15 {
		t.Errorf("MulVec gave %v", got)
	}

	mt := m.T()
	if r, c := mt.Dims(); r != 3 || c != 2 {
		t.Fatalf("T gave dims %dx%d", r, c)
	}
	if mt.At(2, 1) != 6 {
		t.Errorf("T gave wrong values")
	}

	prod, err := m.Mul(mt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, c := prod.Dims(); r != 2 || c != 2 {
		t.Fatalf("Mul gave dims %dx%d", r, c)
	}
	if prod.At(0, 0) != 14 { // 1+4+9
		t.Errorf("Mul gave %v at (0,0)", prod.At(0, 0))
	}

	if got := m.Scale(3).At(1, 2); got != 18 {
		t.Errorf("Scale gave %v", got)
	}

	row := m.Row(1)
	if got := row.Raw(); got[0] != 4 || got[2] != 6 {
		t.Errorf("Row gave %v", got)
	}
}

func TestMatrixDimensionMismatch(t *testing.T) {
	if _, err := NewMatrix(2, 2, []float64{1, 2, 3}); !isMismatch(err) {
		t.Errorf("NewMatrix: expected DimensionMismatchError, got %v", err)
	}

	m, _ := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	n, _ := NewMatrix(2, 2, []float64{1, 2, 3, 4})

	if _, err := m.Add(n); !isMismatch(err) {
		t.Errorf("Add: expected DimensionMismatchError, got %v", err)
	}
	if _, err := m.MulElem(n); !isMismatch(err) {
		t.Errorf("MulElem: expected DimensionMismatchError, got %v", err)
	}
	if _, err := m.Mul(n); !isMismatch(err) {
		t.Errorf("Mul: expected DimensionMismatchError, got %v", err)
	}
	if _, err := m.MulVec(NewVector([]float64{1, 2})); !isMismatch(err) {
		t.Errorf("MulVec: expected DimensionMismatchError, got %v", err)
	}
}

func TestZeroValues(t *testing.T) {
	var v Vector
	if v.Len() != 0 {
		t.Errorf("zero Vector has length %d", v.Len())
	}

	var m Matrix
	if r, c := m.Dims(); r != 0 || c != 0 {
		t.Errorf("zero Matrix has dims %dx%d", r, c)
	}
}

func TestEmptyOperands(t *testing.T) {
	var a, b Vector

	sum, err := a.Add(b)
	if err != nil || sum.Len() != 0 {
		t.Errorf("Add of empty Vectors gave (%v, %v)", sum, err)
	}
	diff, err := a.Sub(b)
	if err != nil || diff.Len() != 0 {
		t.Errorf("Sub of empty Vectors gave (%v, %v)", diff, err)
	}
	prod, err := a.MulElem(b)
	if err != nil || prod.Len() != 0 {
		t.Errorf("MulElem of empty Vectors gave (%v, %v)", prod, err)
	}
	dot, err := a.Dot(b)
	if err != nil || dot != 0 {
		t.Errorf("Dot of empty Vectors gave (%v, %v)", dot, err)
	}

	// an empty operand against a non-empty one is still a mismatch
	if _, err := a.Add(NewVector([]float64{1})); !isMismatch(err) {
		t.Errorf("Add: expected DimensionMismatchError, got %v", err)
	}
	if _, err := NewVector([]float64{1}).Dot(b); !isMismatch(err) {
		t.Errorf("Dot: expected DimensionMismatchError, got %v", err)
	}

	em, err := NewMatrix(0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, c := em.Dims(); r != 0 || c != 0 {
		t.Fatalf("NewMatrix(0, 0) gave dims %dx%d", r, c)
	}

	var m, n Matrix
	if _, err := m.Add(n); err != nil {
		t.Errorf("Add of empty Matrices gave %v", err)
	}
	if _, err := m.MulElem(n); err != nil {
		t.Errorf("MulElem of empty Matrices gave %v", err)
	}
	if _, err := m.Mul(n); err != nil {
		t.Errorf("Mul of empty Matrices gave %v", err)
	}
	if v, err := m.MulVec(a); err != nil || v.Len() != 0 {
		t.Errorf("MulVec of empty operands gave (%v, %v)", v, err)
	}
}

func TestMatrixAddValues(t *testing.T) {
	m, _ := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	n, _ := NewMatrix(2, 2, []float64{10, 20, 30, 40})

	sum, err := m.Add(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sum.At(1, 1)-44) > 1e-12 {
		t.Errorf("Add gave %v at (1,1)", sum.At(1, 1))
	}
}

func isMismatch(err error) bool {
	_, ok := err.(supervised.DimensionMismatchError)
	return ok
}
