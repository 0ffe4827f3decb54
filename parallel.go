package supervised

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Run pairs a Trainer with the Dataset it should consume.
type Run struct {
	Trainer Trainer
	Data    Dataset
}

// Outcome is the result of a single training Run. Model may be non-nil even
// when Err is non-nil; see the Trainer documentation.
type Outcome struct {
	Model Model
	Err   error
}

// TrainAll executes each Run on its own worker goroutine, at most maxWorkers at
// a time, and returns the Outcomes in the same order as the Runs. If maxWorkers
// is not positive, the number of CPUs is used. Runs share no state, so this is
// safe for any combination of trainers and datasets.
//
// TrainAll panics with type NilArgError if any Run has a nil Trainer.
func TrainAll(runs []Run, maxWorkers int) []Outcome {
	for _, r := range runs {
		if r.Trainer == nil {
			panic(NilArgError{"Trainer"})
		}
	}

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	outcomes := make([]Outcome, len(runs))

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for i := range runs {
		i := i
		p.Go(func() {
			m, err := runs[i].Trainer.Train(runs[i].Data)
			outcomes[i] = Outcome{Model: m, Err: err}
		})
	}
	p.Wait()

	return outcomes
}
