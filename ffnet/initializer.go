package ffnet

import "math/rand"

// Initializer produces the network's starting weights. Implementations draw
// from the provided generator only, so a fixed Config.Seed makes every run
// reproducible.
type Initializer interface {
	// Gen produces a single initial weight. fanIn is the number of inputs to
	// the receiving unit, including the bias.
	Gen(rng *rand.Rand, fanIn int) float64
}

type uniform struct {
	lower, upper float64
}

// Uniform returns the default Initializer: weights drawn uniformly from
// [-1, 1] and scaled down by the unit's fan-in, a small symmetric range that
// breaks symmetry between hidden units. The bounds can be set by Bounds.
func Uniform() *uniform {
	return &uniform{-1, 1}
}

// Bounds sets the range of a Uniform Initializer, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of Initializer for Uniform.
func (u *uniform) Gen(rng *rand.Rand, fanIn int) float64 {
	return (rng.Float64()*(u.upper-u.lower) + u.lower) / float64(fanIn)
}

type normal struct {
	mean, sd float64
}

// Normal returns an Initializer drawing from a normal distribution scaled down
// by the unit's fan-in. The center and standard deviation default to 0 and 1,
// and can be set by Mean and SD.
func Normal() *normal {
	return &normal{0, 1}
}

// Mean sets the center of the distribution, returning the Initializer.
func (n *normal) Mean(mean float64) *normal {
	n.mean = mean
	return n
}

// SD sets the standard deviation of the distribution, returning the
// Initializer.
func (n *normal) SD(sd float64) *normal {
	n.sd = sd
	return n
}

// Gen is the implementation of Initializer for Normal.
func (n *normal) Gen(rng *rand.Rand, fanIn int) float64 {
	return (rng.NormFloat64()*n.sd + n.mean) / float64(fanIn)
}
