package supervised

// Model is the common capability produced by every trainer: a frozen predictor.
// Models are immutable value objects; once returned by a trainer they hold no
// mutable alias to trainer state and are safe for concurrent use from multiple
// goroutines without locking.
type Model interface {
	// Predict maps a feature vector to the model's output. For margin
	// classifiers the output is a single ±1 label; for networks it is the
	// output-layer vector. Predict returns type DimensionMismatchError if
	// len(features) does not equal Dims().
	Predict(features []float64) ([]float64, error)

	// Dims returns the input dimension the model was trained with.
	Dims() int
}

// Trainer converts a labeled Dataset into a Model. Implementations own all of
// their intermediate state, so independent Trainers may run concurrently on
// separate goroutines.
//
// A Trainer may return both a non-nil Model and a non-nil error: sentinels such
// as ErrDidNotConverge and ErrNonFiniteGradient report a degraded -- but still
// usable -- result. Callers that only care about usability should check the
// Model; callers that care about optimality should check the error.
type Trainer interface {
	Train(ds Dataset) (Model, error)
}
