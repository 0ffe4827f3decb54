package supervised

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional
// information necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned by trainers.
var (
	// ErrEmptyDataset is returned when training is invoked with zero examples. No
	// model is produced alongside it.
	ErrEmptyDataset = Error{"dataset has no examples"}

	// ErrDidNotConverge is returned when an optimizer reaches its iteration cap
	// before satisfying its stopping tolerance. The model returned alongside it
	// holds the best parameters found so far and is still usable.
	ErrDidNotConverge = Error{"optimization reached its iteration cap before converging"}

	// ErrNonFiniteGradient is returned when training produces a NaN or Inf. The
	// run is aborted and the last known-good parameters are returned alongside it.
	ErrNonFiniteGradient = Error{"training produced a non-finite value"}
)

// DimensionMismatchError documents operations given operands whose shapes are
// incompatible with what was expected. It is always a caller programming error;
// the operation is aborted rather than truncating or padding either operand.
type DimensionMismatchError struct {
	Expected, Got int

	// Context names the operand or operation the mismatch occurred in.
	Context string
}

func (err DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch in %s: expected %d, got %d", err.Context, err.Expected, err.Got)
}

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}
