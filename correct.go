package supervised

import "math"

// CorrectRound reports whether each output, rounded to the nearest integer,
// equals the corresponding target. It is a ready-made IsCorrect check for
// networks with outputs in (0, 1).
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// CorrectSign reports whether each output has the same sign as the
// corresponding target, with zero counted as negative. It is the natural check
// for ±1 margin classifiers.
//
// assumes len(outs) == len(targets)
func CorrectSign(outs, targets []float64) bool {
	for i := range outs {
		if sign(outs[i]) != sign(targets[i]) {
			return false
		}
	}

	return true
}

// Accuracy runs m on every example in ds and returns the fraction for which
// isCorrect accepts the prediction. Any prediction error is returned
// immediately, and an empty Dataset returns ErrEmptyDataset.
func Accuracy(m Model, ds Dataset, isCorrect func(outs, targets []float64) bool) (float64, error) {
	if m == nil {
		panic(NilArgError{"Model"})
	}

	if ds.Len() == 0 {
		return 0, ErrEmptyDataset
	}

	var correct int
	for i := 0; i < ds.Len(); i++ {
		outs, err := m.Predict(ds.Inputs(i))
		if err != nil {
			return 0, err
		}

		if isCorrect(outs, ds.Targets(i)) {
			correct++
		}
	}

	return float64(correct) / float64(ds.Len()), nil
}

func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	return -1
}
