// Random-duration samplers for interarrival, processing, failure, and
// recovery times. Each simulation concern gets its own sampler, built once
// at Model construction from the configured distribution selector.

package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// Recognized distribution selector values.
const (
	DistExponential = "exponential"
	DistUniform     = "uniform"
	DistNormal      = "normal"
	DistCustom      = "custom"
)

// DurationSampler draws simulated durations (in seconds of virtual time).
type DurationSampler interface {
	Sample(rng *rand.Rand) float64
}

// VariateParams carries the parameter superset for every distribution; each
// sampler reads only the fields it needs. The per-concern values are derived
// from the model configuration in config.go.
type VariateParams struct {
	Rate   float64   // exponential: events per second
	Mean   float64   // normal: mean duration
	Std    float64   // normal: standard deviation
	Low    float64   // uniform: inclusive lower bound
	High   float64   // uniform: exclusive upper bound
	Values []float64 // custom: fixed literal set, drawn uniformly
}

// ExponentialSampler produces exponentially-distributed durations with the
// given rate (mean 1/rate).
type ExponentialSampler struct {
	rate float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.rate
}

// UniformSampler produces durations uniformly distributed in [low, high).
type UniformSampler struct {
	low, high float64
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.low + rng.Float64()*(s.high-s.low)
}

// NormalSampler produces Gaussian durations clamped at zero. Durations cannot
// be negative; the clamp biases the realized mean upward when std is large
// relative to mean. That bias is a documented property of the model, not a
// defect -- downstream statistics depend on it staying as-is.
type NormalSampler struct {
	mean, std float64
}

func (s *NormalSampler) Sample(rng *rand.Rand) float64 {
	return math.Max(0, rng.NormFloat64()*s.std+s.mean)
}

// ChoiceSampler draws uniformly from a fixed, non-empty set of literal values.
type ChoiceSampler struct {
	values []float64
}

func (s *ChoiceSampler) Sample(rng *rand.Rand) float64 {
	return s.values[rng.Intn(len(s.values))]
}

// NewDurationSampler creates a DurationSampler for the named distribution.
// Unknown names yield ErrUnsupportedDistribution; parameter problems yield
// ErrInvalidConfig.
func NewDurationSampler(dist string, p VariateParams) (DurationSampler, error) {
	switch dist {
	case DistExponential:
		if p.Rate <= 0 {
			return nil, fmt.Errorf("%w: exponential rate must be > 0, got %v", ErrInvalidConfig, p.Rate)
		}
		return &ExponentialSampler{rate: p.Rate}, nil

	case DistUniform:
		if p.High < p.Low {
			return nil, fmt.Errorf("%w: uniform bounds inverted: low=%v high=%v", ErrInvalidConfig, p.Low, p.High)
		}
		return &UniformSampler{low: p.Low, high: p.High}, nil

	case DistNormal:
		if p.Std < 0 {
			return nil, fmt.Errorf("%w: normal std must be >= 0, got %v", ErrInvalidConfig, p.Std)
		}
		return &NormalSampler{mean: p.Mean, std: p.Std}, nil

	case DistCustom:
		if len(p.Values) == 0 {
			return nil, fmt.Errorf("%w: custom distribution requires a non-empty value set", ErrInvalidConfig)
		}
		return &ChoiceSampler{values: p.Values}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDistribution, dist)
	}
}
