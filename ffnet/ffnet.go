// Package ffnet trains feed-forward networks by backpropagation and gradient
// descent.
//
// A network is described by its topology -- the ordered layer sizes, input
// first -- and a Config. Weights are mutated in place only within the training
// loop; the returned Model owns frozen copies with no remaining mutable alias,
// so it is safe for concurrent prediction.
package ffnet

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sharnoff/supervised"
	"github.com/sharnoff/supervised/loss"
)

// Result is a per-epoch progress report, delivered through Config.Update.
type Result struct {
	// Epoch is the 1-based epoch the report follows.
	Epoch int

	// Cost is the average cost over the epoch's examples, from Config.Loss.
	Cost float64
}

// Config collects the options recognized by Train. The zero value of every
// field selects a documented default.
type Config struct {
	// Activation is the nonlinearity applied by every layer. Defaults to
	// Logistic.
	Activation Activation

	// Loss is the cost function trained against. Defaults to loss.MSE().
	Loss loss.Function

	// LearningRate scales each gradient step. Defaults to 0.3.
	LearningRate float64

	// Epochs is the number of full passes over the dataset. Defaults to 100.
	Epochs int

	// Tolerance enables early stopping: training ends once the epoch-over-epoch
	// change in average cost falls below it. Zero disables early stopping.
	Tolerance float64

	// Seed fixes the generator used for weight initialization, making training
	// reproducible.
	Seed int64

	// Init produces the initial weights. Defaults to Uniform().
	Init Initializer

	// Update, if non-nil, receives a Result after every epoch.
	Update func(Result)
}

func (conf Config) withDefaults() (Config, error) {
	if conf.Loss == nil {
		conf.Loss = loss.MSE()
	}

	if conf.LearningRate == 0 {
		conf.LearningRate = 0.3
	} else if conf.LearningRate < 0 {
		return conf, errors.Errorf("learning rate must be > 0 (%g)", conf.LearningRate)
	}

	if conf.Epochs == 0 {
		conf.Epochs = 100
	} else if conf.Epochs < 0 {
		return conf, errors.Errorf("epoch count must be > 0 (%d)", conf.Epochs)
	}

	if conf.Tolerance < 0 {
		return conf, errors.Errorf("tolerance must be >= 0 (%g)", conf.Tolerance)
	}

	if conf.Init == nil {
		conf.Init = Uniform()
	}

	return conf, nil
}

// Trainer adapts Train to the supervised.Trainer interface.
type Trainer struct {
	Topology []int
	Conf     Config
}

func (t Trainer) Train(ds supervised.Dataset) (supervised.Model, error) {
	m, err := Train(ds, t.Topology, t.Conf)
	if m == nil {
		// avoid wrapping a typed nil in the interface
		return nil, err
	}

	return m, err
}

// layer is the trainer's mutable working state for one weight layer:
// weights[unit] holds that unit's input weights with the bias weight last.
type layer struct {
	weights [][]float64
	act     Activation
}

// Train produces a network model from the dataset and topology. The topology
// lists every layer size in order, beginning with the input dimension and
// ending with the target dimension. Error conditions:
//	(0) If the dataset is empty: supervised.ErrEmptyDataset,
//	(1) If the topology does not match the dataset's dimensions, or the Config
//	    is invalid: a descriptive error with no model,
//	(2) If an epoch produces a NaN or Inf: supervised.ErrNonFiniteGradient,
//	    returned alongside a model holding the last known-good weights.
func Train(ds supervised.Dataset, topology []int, conf Config) (*Model, error) {
	if ds.Len() == 0 {
		return nil, supervised.ErrEmptyDataset
	}

	conf, err := conf.withDefaults()
	if err != nil {
		return nil, err
	}

	if len(topology) < 2 {
		return nil, errors.Errorf("topology needs at least input and output layers (%d)", len(topology))
	}
	for i, size := range topology {
		if size < 1 {
			return nil, errors.Errorf("layer %d has size %d; all layers must be non-empty", i, size)
		}
	}
	if topology[0] != ds.Dims() {
		return nil, supervised.DimensionMismatchError{Expected: ds.Dims(), Got: topology[0], Context: "input layer"}
	}
	if topology[len(topology)-1] != ds.TargetDims() {
		return nil, supervised.DimensionMismatchError{Expected: ds.TargetDims(), Got: topology[len(topology)-1], Context: "output layer"}
	}

	layers := initLayers(topology, conf, rand.New(rand.NewSource(conf.Seed)))

	var lastCost float64
	for epoch := 1; epoch <= conf.Epochs; epoch++ {
		cost, err := runEpoch(layers, ds, conf)
		if err != nil {
			// the epoch aborted before its bad update was applied, so the
			// working weights are the last known-good ones
			return frozen(layers, topology[0]), err
		}

		if conf.Update != nil {
			conf.Update(Result{Epoch: epoch, Cost: cost})
		}

		if conf.Tolerance > 0 && epoch > 1 && math.Abs(lastCost-cost) < conf.Tolerance {
			break
		}
		lastCost = cost
	}

	return frozen(layers, topology[0]), nil
}

func initLayers(topology []int, conf Config, rng *rand.Rand) []layer {
	layers := make([]layer, len(topology)-1)
	for l := range layers {
		fanIn := topology[l] + 1
		weights := make([][]float64, topology[l+1])
		for u := range weights {
			weights[u] = make([]float64, fanIn)
			for i := range weights[u] {
				weights[u][i] = conf.Init.Gen(rng, fanIn)
			}
		}

		layers[l] = layer{weights: weights, act: conf.Activation}
	}

	return layers
}

// runEpoch makes one full pass over the dataset, updating weights after each
// example, and returns the average cost. A non-finite activation or delta
// aborts the pass before the offending update is applied.
func runEpoch(layers []layer, ds supervised.Dataset, conf Config) (float64, error) {
	var total float64

	for i := 0; i < ds.Len(); i++ {
		acts := forward(layers, ds.Inputs(i))
		outs := acts[len(acts)-1]
		if !allFinite(outs) {
			return 0, supervised.ErrNonFiniteGradient
		}

		targets := ds.Targets(i)
		total += conf.Loss.Cost(outs, targets)

		deltas := backward(layers, acts, conf.Loss.Derivs(outs, targets))
		for l := range deltas {
			if !allFinite(deltas[l]) {
				return 0, supervised.ErrNonFiniteGradient
			}
		}

		if !update(layers, ds.Inputs(i), acts, deltas, conf.LearningRate) {
			return 0, supervised.ErrNonFiniteGradient
		}
	}

	return total / float64(ds.Len()), nil
}

// forward propagates inputs through every layer, returning each layer's
// activations. acts[l] is the output of layer l.
func forward(layers []layer, inputs []float64) [][]float64 {
	acts := make([][]float64, len(layers))

	in := inputs
	for l, lyr := range layers {
		out := make([]float64, len(lyr.weights))
		for u, w := range lyr.weights {
			sum := w[len(w)-1] // bias
			for i, x := range in {
				sum += w[i] * x
			}

			out[u] = lyr.act.apply(sum)
		}

		acts[l] = out
		in = out
	}

	return acts
}

// backward computes each layer's deltas -- the derivative of the cost with
// respect to every unit's pre-activation sum -- by the chain rule, starting
// from the cost derivatives at the outputs.
func backward(layers []layer, acts [][]float64, outDerivs []float64) [][]float64 {
	deltas := make([][]float64, len(layers))

	last := len(layers) - 1
	deltas[last] = make([]float64, len(outDerivs))
	for u := range outDerivs {
		deltas[last][u] = outDerivs[u] * layers[last].act.deriv(acts[last][u])
	}

	for l := last - 1; l >= 0; l-- {
		deltas[l] = make([]float64, len(layers[l].weights))
		for u := range deltas[l] {
			var sum float64
			for k, w := range layers[l+1].weights {
				sum += deltas[l+1][k] * w[u]
			}

			deltas[l][u] = sum * layers[l].act.deriv(acts[l][u])
		}
	}

	return deltas
}

// update applies one gradient step: w -= learningRate * delta * input. The new
// weights are staged and only installed once every value is known to be
// finite; a false return leaves the layers untouched, so the working weights
// are always the last known-good set.
func update(layers []layer, inputs []float64, acts [][]float64, deltas [][]float64, learningRate float64) bool {
	staged := make([][][]float64, len(layers))

	in := inputs
	for l := range layers {
		staged[l] = make([][]float64, len(layers[l].weights))
		for u, w := range layers[l].weights {
			nw := make([]float64, len(w))
			step := learningRate * deltas[l][u]
			for i, x := range in {
				nw[i] = w[i] - step*x
			}
			nw[len(w)-1] = w[len(w)-1] - step // bias input is the constant 1

			if !allFinite(nw) {
				return false
			}

			staged[l][u] = nw
		}

		in = acts[l]
	}

	for l := range layers {
		copy(layers[l].weights, staged[l])
	}

	return true
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
