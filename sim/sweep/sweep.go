// Package sweep implements the parameter-sweep optimizer. It repeatedly
// constructs the simulation model with randomized configurations drawn from
// caller-supplied ranges, advances each to a fixed horizon, and retains the
// configuration with the minimal average latency. It consumes only the
// public three-call contract (NewModel, AdvanceTo, Snapshot) and never
// reaches into engine internals.
package sweep

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/Azat-Bilalov/highload-service-model/sim"
)

// Range bounds a float64 parameter, inclusive on both ends.
type Range struct {
	Min, Max float64
}

// IntRange bounds an integer parameter, inclusive on both ends.
type IntRange struct {
	Min, Max int
}

// Ranges defines the search space. Every trial draws each parameter
// uniformly at random within its range.
type Ranges struct {
	NumServers           IntRange
	RequestRate          Range
	FailureRate          Range
	RecoveryRate         Range
	ServerProcessingTime Range
}

// Trial captures one experiment: the configuration tried and the snapshot
// read at the horizon.
type Trial struct {
	Seed     int64
	Config   sim.Config
	Snapshot sim.MetricsSnapshot
}

// Result holds the winning trial and the full experiment log.
type Result struct {
	Best   Trial
	Trials []Trial
}

// Optimize runs trials simulations over the search space and selects the
// one with minimal average latency (earlier trials win ties). The base
// config supplies everything the ranges do not randomize, notably the
// distribution selectors. The whole sweep is deterministic in (base,
// ranges, horizon, trials, seed).
func Optimize(base sim.Config, ranges Ranges, horizon float64, trials int, seed int64) (*Result, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be > 0, got %d", trials)
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("horizon must be > 0, got %v", horizon)
	}
	if ranges.NumServers.Min <= 0 || ranges.NumServers.Max < ranges.NumServers.Min {
		return nil, fmt.Errorf("invalid num_servers range [%d, %d]", ranges.NumServers.Min, ranges.NumServers.Max)
	}

	rng := rand.New(rand.NewSource(seed))
	result := &Result{Trials: make([]Trial, 0, trials)}

	for i := 0; i < trials; i++ {
		cfg := base
		cfg.NumServers = drawInt(rng, ranges.NumServers)
		cfg.RequestRate = drawFloat(rng, ranges.RequestRate)
		cfg.FailureRate = drawFloat(rng, ranges.FailureRate)
		cfg.RecoveryRate = drawFloat(rng, ranges.RecoveryRate)
		cfg.ServerProcessingTime = drawFloat(rng, ranges.ServerProcessingTime)

		trialSeed := rng.Int63()
		m, err := sim.NewModel(cfg, trialSeed)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		if err := m.AdvanceTo(horizon); err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}

		trial := Trial{Seed: trialSeed, Config: cfg, Snapshot: m.Snapshot()}
		result.Trials = append(result.Trials, trial)
		logrus.Debugf("trial %d: servers=%d rate=%.3f avg_latency=%.4f",
			i, cfg.NumServers, cfg.RequestRate, trial.Snapshot.AvgLatency)

		if i == 0 || trial.Snapshot.AvgLatency < result.Best.Snapshot.AvgLatency {
			result.Best = trial
		}
	}
	return result, nil
}

func drawInt(rng *rand.Rand, r IntRange) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func drawFloat(rng *rand.Rand, r Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
