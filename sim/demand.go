// Demand sources produce the external customer demand sequence consumed
// by the retailer. The engine itself contains no randomness: every source
// materializes a full per-week sequence before the run starts, so a run
// is a pure function of its inputs.

package sim

import "math/rand"

// DemandSource produces one non-negative external demand value per week.
type DemandSource interface {
	// Sequence returns exactly weeks demand values.
	Sequence(weeks int) []int
}

// FixedDemand replays a supplied sequence, filling weeks beyond its
// length with Default.
type FixedDemand struct {
	Values  []int
	Default int
}

// NewFixedDemand creates a FixedDemand with the standard default fill.
func NewFixedDemand(values []int) FixedDemand {
	return FixedDemand{Values: values, Default: DefaultDemand}
}

func (d FixedDemand) Sequence(weeks int) []int {
	seq := make([]int, weeks)
	for w := range seq {
		if w < len(d.Values) {
			seq[w] = d.Values[w]
		} else {
			seq[w] = d.Default
		}
	}
	return seq
}

// ConstantDemand yields the same quantity every week.
type ConstantDemand int

func (d ConstantDemand) Sequence(weeks int) []int {
	seq := make([]int, weeks)
	for w := range seq {
		seq[w] = int(d)
	}
	return seq
}

// RandomDemand draws each week's demand uniformly from [Min, Max] using
// a seeded generator. Two sources with the same seed and bounds produce
// identical sequences.
type RandomDemand struct {
	Seed int64
	Min  int
	Max  int
}

func (d RandomDemand) Sequence(weeks int) []int {
	rng := rand.New(rand.NewSource(d.Seed))
	span := d.Max - d.Min + 1
	if span < 1 {
		span = 1
	}
	seq := make([]int, weeks)
	for w := range seq {
		seq[w] = d.Min + rng.Intn(span)
	}
	return seq
}
