// sim/model.go
package sim

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Model is the orchestrator: it owns the virtual clock, the event queue, the
// server fleet, and the metrics, and it is the only object external
// collaborators touch. All simulated activity runs on a single logical
// thread of control -- exactly one event executes at a time.
type Model struct {
	cfg Config

	clock  float64
	events EventQueue
	seq    uint64

	rng     *PartitionedRNG
	servers []*Server
	metrics *Metrics

	arrival    DurationSampler
	processing DurationSampler
	failure    DurationSampler
	recovery   DurationSampler
}

// NewModel validates the configuration, creates the server fleet, and seeds
// the arrival and failure processes. Construction is atomic: on any error
// no partially-initialized Model is returned.
func NewModel(cfg Config, seed int64) (*Model, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	arrival, err := NewDurationSampler(cfg.ArrivalDistribution, cfg.arrivalParams())
	if err != nil {
		return nil, fmt.Errorf("arrival distribution: %w", err)
	}
	processing, err := NewDurationSampler(cfg.ProcessingDistribution, cfg.processingParams())
	if err != nil {
		return nil, fmt.Errorf("processing distribution: %w", err)
	}
	failure, err := NewDurationSampler(cfg.FailureDistribution, cfg.failureParams())
	if err != nil {
		return nil, fmt.Errorf("failure distribution: %w", err)
	}
	recovery, err := NewDurationSampler(cfg.RecoveryDistribution, cfg.recoveryParams())
	if err != nil {
		return nil, fmt.Errorf("recovery distribution: %w", err)
	}

	m := &Model{
		cfg:        cfg,
		events:     make(EventQueue, 0),
		rng:        NewPartitionedRNG(seed),
		servers:    make([]*Server, cfg.NumServers),
		metrics:    NewMetrics(),
		arrival:    arrival,
		processing: processing,
		failure:    failure,
		recovery:   recovery,
	}
	for i := range m.servers {
		m.servers[i] = NewServer(i)
	}

	// Arm the two perpetual processes. Either can fail here only if a
	// custom distribution was configured with a negative literal value.
	if err := m.scheduleNextArrival(); err != nil {
		return nil, err
	}
	if err := m.scheduleNextFailure(); err != nil {
		return nil, err
	}

	logrus.Debugf("model constructed: %d servers, seed %d", cfg.NumServers, seed)
	return m, nil
}

// Now returns the current virtual time.
func (m *Model) Now() float64 {
	return m.clock
}

// Schedule enqueues an event to execute after the given delay of virtual
// time. Events due at the same time run in the order they were scheduled.
func (m *Model) Schedule(delay float64, ev Event) error {
	if delay < 0 || math.IsNaN(delay) {
		return fmt.Errorf("%w: %v", ErrInvalidDelay, delay)
	}
	m.seq++
	heap.Push(&m.events, &eventEntry{time: m.clock + delay, seq: m.seq, ev: ev})
	return nil
}

// advanceOne pops the earliest event by (time, insertion order), advances
// the clock to its due time, and executes it.
func (m *Model) advanceOne() error {
	entry := heap.Pop(&m.events).(*eventEntry)
	m.clock = entry.time
	logrus.Tracef("[t=%.6f] executing %T", m.clock, entry.ev)
	return entry.ev.Execute(m)
}

// AdvanceTo advances simulated time to t, executing every event due strictly
// before t, then sets the clock to t unconditionally -- the clock advances
// even with an empty queue, so callers can sample snapshots periodically.
// Callable repeatedly with a non-decreasing sequence of times.
func (m *Model) AdvanceTo(t float64) error {
	if t < m.clock || math.IsNaN(t) {
		return fmt.Errorf("%w: cannot advance to %v, clock already at %v", ErrInvalidDelay, t, m.clock)
	}
	for len(m.events) > 0 && m.events[0].time < t {
		if err := m.advanceOne(); err != nil {
			return err
		}
	}
	m.clock = t
	return nil
}

// Snapshot returns a pure read of the accumulated metrics as of the current
// virtual time.
func (m *Model) Snapshot() MetricsSnapshot {
	available := 0
	for _, s := range m.servers {
		if s.Status() == ServerUp {
			available++
		}
	}
	return MetricsSnapshot{
		Time:              m.clock,
		TotalRequests:     m.metrics.TotalRequests,
		CompletedRequests: m.metrics.CompletedRequests,
		FailedRequests:    m.metrics.FailedRequests,
		AvgLatency:        m.metrics.AvgLatency(),
		AvailableServers:  available,
	}
}

// Metrics exposes the collector for end-of-run reporting.
func (m *Model) Metrics() *Metrics {
	return m.metrics
}

// scheduleNextArrival draws an interarrival duration and arms the next
// arrival event.
func (m *Model) scheduleNextArrival() error {
	d := m.arrival.Sample(m.rng.ForSubsystem(SubsystemArrival))
	return m.Schedule(d, &arrivalEvent{})
}

// scheduleNextFailure draws a time-to-next-failure and arms the next
// failure event.
func (m *Model) scheduleNextFailure() error {
	d := m.failure.Sample(m.rng.ForSubsystem(SubsystemFailure))
	return m.Schedule(d, &failureEvent{})
}
