// Package svm trains soft-margin kernel classifiers on datasets labeled ±1.
//
// Training runs a sequential pairwise optimization of the dual problem (in the
// style of SMO): coefficient pairs are updated until every coefficient
// satisfies the KKT conditions within a tolerance, or the iteration cap is
// reached. Hitting the cap is not fatal; the best model found is returned
// alongside supervised.ErrDidNotConverge.
package svm

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/kernel"
	"github.com/sharnoff/supervised/tensor"
	"gonum.org/v1/gonum/mat"
)

// Config collects the options recognized by Train. The zero value of every
// field other than Kernel selects a documented default.
type Config struct {
	// Kernel is the similarity measure used both during optimization and by
	// the trained Model at prediction time. The zero value is the linear
	// kernel.
	Kernel kernel.Kernel

	// C is the penalty parameter bounding each dual coefficient; larger values
	// punish misclassification more heavily. Defaults to 1.
	C float64

	// Tol is the KKT tolerance used to decide whether a coefficient still
	// violates optimality. Defaults to 1e-3.
	Tol float64

	// MaxPasses is the number of consecutive full passes without a coefficient
	// change required to declare convergence. Defaults to 5.
	MaxPasses int

	// MaxIter caps the total number of full passes over the dataset. Defaults
	// to 1000.
	MaxIter int

	// SVEpsilon is the magnitude below which a final coefficient is treated as
	// zero and its training point pruned from the stored support vectors.
	// Defaults to 1e-8.
	SVEpsilon float64

	// Seed fixes the pseudo-random pair selection so that training is
	// reproducible.
	Seed int64
}

func (conf Config) withDefaults() (Config, error) {
	if conf.C == 0 {
		conf.C = 1
	} else if conf.C < 0 {
		return conf, errors.Errorf("penalty C must be > 0 (%g)", conf.C)
	}

	if conf.Tol == 0 {
		conf.Tol = 1e-3
	} else if conf.Tol < 0 {
		return conf, errors.Errorf("tolerance must be > 0 (%g)", conf.Tol)
	}

	if conf.MaxPasses == 0 {
		conf.MaxPasses = 5
	} else if conf.MaxPasses < 0 {
		return conf, errors.Errorf("MaxPasses must be > 0 (%d)", conf.MaxPasses)
	}

	if conf.MaxIter == 0 {
		conf.MaxIter = 1000
	} else if conf.MaxIter < 0 {
		return conf, errors.Errorf("MaxIter must be > 0 (%d)", conf.MaxIter)
	}

	if conf.SVEpsilon == 0 {
		conf.SVEpsilon = 1e-8
	} else if conf.SVEpsilon < 0 {
		return conf, errors.Errorf("SVEpsilon must be > 0 (%g)", conf.SVEpsilon)
	}

	return conf, nil
}

// Trainer adapts Train to the supervised.Trainer interface.
type Trainer struct {
	Conf Config
}

func (t Trainer) Train(ds supervised.Dataset) (supervised.Model, error) {
	m, err := Train(ds, t.Conf)
	if m == nil {
		// avoid wrapping a typed nil in the interface
		return nil, err
	}

	return m, err
}

// Train produces a margin classifier from a dataset whose targets are single
// values of ±1. Error conditions:
//	(0) If the dataset is empty: supervised.ErrEmptyDataset,
//	(1) If any target is not a single ±1 value, or the Config is invalid: a
//	    descriptive error with no model,
//	(2) If the iteration cap is reached before the KKT conditions are met:
//	    supervised.ErrDidNotConverge, returned alongside the best model found.
//
// A dataset where every example carries the same label yields a degenerate
// model that always predicts that label.
func Train(ds supervised.Dataset, conf Config) (*Model, error) {
	if ds.Len() == 0 {
		return nil, supervised.ErrEmptyDataset
	}

	conf, err := conf.withDefaults()
	if err != nil {
		return nil, err
	}

	if ds.TargetDims() != 1 {
		return nil, supervised.DimensionMismatchError{Expected: 1, Got: ds.TargetDims(), Context: "margin classifier targets"}
	}

	n := ds.Len()
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = ds.Targets(i)[0]
		if y[i] != 1 && y[i] != -1 {
			return nil, errors.Errorf("target of example %d is %g; margin classifiers require ±1", i, y[i])
		}
	}

	// A single represented class admits no margin to optimize; the model
	// degenerates to a constant.
	if allSame(y) {
		return &Model{kern: conf.Kernel, dims: ds.Dims(), constant: true, constLabel: y[0]}, nil
	}

	xs := make([]tensor.Vector, n)
	for i := range xs {
		xs[i] = tensor.NewVector(ds.Inputs(i))
	}

	gram, err := gramMatrix(conf.Kernel, xs)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating kernel over training pairs failed")
	}

	alpha, bias, converged := optimize(conf, gram, y, rand.New(rand.NewSource(conf.Seed)))

	m := freeze(conf, xs, y, alpha, bias, ds.Dims())
	if !converged {
		return m, supervised.ErrDidNotConverge
	}

	return m, nil
}

// gramMatrix evaluates the kernel over every pair of training points. The
// kernel's required symmetry makes the upper triangle sufficient.
func gramMatrix(k kernel.Kernel, xs []tensor.Vector) (*mat.SymDense, error) {
	n := len(xs)
	gram := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := k.Evaluate(xs[i], xs[j])
			if err != nil {
				return nil, err
			}

			gram.SetSym(i, j, v)
		}
	}

	return gram, nil
}

// optimize runs the pairwise dual coordinate updates, returning the final
// coefficients, the bias, and whether the KKT conditions were met before the
// iteration cap.
func optimize(conf Config, gram *mat.SymDense, y []float64, rng *rand.Rand) ([]float64, float64, bool) {
	n := len(y)
	alpha := make([]float64, n)
	var b float64

	// decision value at training point i under the current coefficients
	f := func(i int) float64 {
		sum := b
		for j := 0; j < n; j++ {
			if alpha[j] != 0 {
				sum += alpha[j] * y[j] * gram.At(j, i)
			}
		}

		return sum
	}

	var stablePasses int
	for iter := 0; iter < conf.MaxIter; iter++ {
		var changed int

		for i := 0; i < n; i++ {
			ei := f(i) - y[i]
			if !((y[i]*ei < -conf.Tol && alpha[i] < conf.C) || (y[i]*ei > conf.Tol && alpha[i] > 0)) {
				continue
			}

			// second coefficient of the pair, chosen uniformly among the rest
			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}
			ej := f(j) - y[j]

			ai, aj := alpha[i], alpha[j]

			// clip bounds keeping both coefficients in [0, C] on the
			// constraint line
			var lo, hi float64
			if y[i] != y[j] {
				lo = math.Max(0, aj-ai)
				hi = math.Min(conf.C, conf.C+aj-ai)
			} else {
				lo = math.Max(0, ai+aj-conf.C)
				hi = math.Min(conf.C, ai+aj)
			}
			if lo == hi {
				continue
			}

			eta := 2*gram.At(i, j) - gram.At(i, i) - gram.At(j, j)
			if eta >= 0 {
				continue
			}

			alpha[j] = aj - y[j]*(ei-ej)/eta
			if alpha[j] > hi {
				alpha[j] = hi
			} else if alpha[j] < lo {
				alpha[j] = lo
			}

			if math.Abs(alpha[j]-aj) < 1e-5 {
				alpha[j] = aj
				continue
			}

			alpha[i] = ai + y[i]*y[j]*(aj-alpha[j])

			b1 := b - ei - y[i]*(alpha[i]-ai)*gram.At(i, i) - y[j]*(alpha[j]-aj)*gram.At(i, j)
			b2 := b - ej - y[i]*(alpha[i]-ai)*gram.At(i, j) - y[j]*(alpha[j]-aj)*gram.At(j, j)
			if 0 < alpha[i] && alpha[i] < conf.C {
				b = b1
			} else if 0 < alpha[j] && alpha[j] < conf.C {
				b = b2
			} else {
				b = (b1 + b2) / 2
			}

			changed++
		}

		if changed == 0 {
			stablePasses++
		} else {
			stablePasses = 0
		}

		if stablePasses >= conf.MaxPasses {
			return alpha, b, true
		}
	}

	return alpha, b, false
}

// freeze prunes effectively-zero coefficients and packages the remainder as an
// immutable Model, so prediction cost scales with the number of true support
// vectors rather than the training set size.
func freeze(conf Config, xs []tensor.Vector, y, alpha []float64, bias float64, dims int) *Model {
	var svs []tensor.Vector
	var coeffs []float64
	for i := range alpha {
		if math.Abs(alpha[i]) > conf.SVEpsilon {
			svs = append(svs, xs[i])
			coeffs = append(coeffs, alpha[i]*y[i])
		}
	}

	return &Model{
		kern:   conf.Kernel,
		svs:    svs,
		coeffs: coeffs,
		bias:   bias,
		dims:   dims,
	}
}

func allSame(y []float64) bool {
	for _, v := range y[1:] {
		if v != y[0] {
			return false
		}
	}

	return true
}
