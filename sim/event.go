// Domain events. Each of the three simulated processes (arrival generation,
// request handling, failure/recovery) is a state machine whose steps are the
// event types below; a process "suspends" by scheduling its next step and
// returning, and "spawns" another process by scheduling its first step at
// zero delay.

package sim

import "github.com/sirupsen/logrus"

// arrivalEvent represents the arrival of a new request into the system.
// It mints the request, hands it to a freshly spawned handler at the same
// instant, and schedules the next arrival. The arrival process never
// terminates; it is bounded only by the horizon the clock is driven to.
type arrivalEvent struct{}

func (e *arrivalEvent) Execute(m *Model) error {
	m.metrics.TotalRequests++
	req := &Request{
		ID:          m.metrics.TotalRequests,
		ArrivalTime: m.clock,
		Outcome:     OutcomePending,
	}
	logrus.Debugf("<< Arrival: request %d at %.6f", req.ID, m.clock)

	// Spawn the handler for immediate execution at the current time, ahead
	// of any event merely resuming later.
	if err := m.Schedule(0, &beginServiceEvent{req: req}); err != nil {
		return err
	}
	return m.scheduleNextArrival()
}

// beginServiceEvent is the first step of a request handler: scan the fleet
// in fixed ascending index order for an available server, then either start
// service or reject on the spot.
type beginServiceEvent struct {
	req *Request
}

func (e *beginServiceEvent) Execute(m *Model) error {
	var srv *Server
	for _, s := range m.servers {
		if s.IsAvailable() {
			srv = s
			break
		}
	}

	if srv == nil {
		// Overflow is instantaneous loss: no cross-server queueing and no
		// wait-and-retry.
		e.req.Outcome = OutcomeRejected
		m.metrics.FailedRequests++
		logrus.Debugf("request %d rejected at %.6f: no server available", e.req.ID, m.clock)
		return nil
	}

	// The availability check and the acquisition happen within one event,
	// with no suspension between them, so the pair is atomic.
	srv.Acquire()
	d := m.processing.Sample(m.rng.ForSubsystem(SubsystemProcessing))
	logrus.Debugf("request %d acquired server %d at %.6f for %.6f", e.req.ID, srv.Index(), m.clock, d)
	return m.Schedule(d, &endServiceEvent{req: e.req, srv: srv})
}

// endServiceEvent is the handler's resumption after the processing timeout:
// release the server and record the terminal outcome.
type endServiceEvent struct {
	req *Request
	srv *Server
}

func (e *endServiceEvent) Execute(m *Model) error {
	e.srv.Release()
	e.req.Outcome = OutcomeCompleted
	e.req.CompletionTime = m.clock
	e.req.Latency = m.clock - e.req.ArrivalTime
	m.metrics.CompletedRequests++
	m.metrics.Latencies = append(m.metrics.Latencies, e.req.Latency)
	logrus.Debugf("request %d completed at %.6f (latency %.6f)", e.req.ID, m.clock, e.req.Latency)
	return nil
}

// failureEvent fires when the next failure is due. It selects one server
// uniformly at random; a server that is busy (or already down) is immune at
// that instant and the attempt is skipped silently -- no retry and no
// rescheduling of that specific draw.
type failureEvent struct{}

func (e *failureEvent) Execute(m *Model) error {
	srv := m.servers[m.rng.ForSubsystem(SubsystemFailure).Intn(len(m.servers))]
	if !srv.IsAvailable() {
		logrus.Debugf("failure attempt skipped at %.6f: server %d not idle", m.clock, srv.Index())
		return m.scheduleNextFailure()
	}

	srv.SetOutOfService()
	d := m.recovery.Sample(m.rng.ForSubsystem(SubsystemRecovery))
	logrus.Debugf("server %d failed at %.6f, recovery in %.6f", srv.Index(), m.clock, d)
	return m.Schedule(d, &recoveryEvent{srv: srv})
}

// recoveryEvent restores a failed server and arms the next failure. The
// failure process is sequential: the next time-to-failure is drawn only
// after the current outage has been repaired, so at most one server is down
// from failure at any instant.
type recoveryEvent struct {
	srv *Server
}

func (e *recoveryEvent) Execute(m *Model) error {
	e.srv.SetInService()
	logrus.Debugf("server %d recovered at %.6f", e.srv.Index(), m.clock)
	return m.scheduleNextFailure()
}
