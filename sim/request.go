// Defines the Request struct that models an individual service request in
// the simulation. Tracks arrival time, outcome, and completion timing.

package sim

import "fmt"

// RequestOutcome represents the lifecycle state of a request.
type RequestOutcome string

const (
	OutcomePending   RequestOutcome = "pending"
	OutcomeCompleted RequestOutcome = "completed"
	OutcomeRejected  RequestOutcome = "rejected"
)

// Request models a single request's pass through the fleet. A request is
// created at its arrival instant and reaches exactly one terminal outcome:
// completed after holding a server for its processing duration, or rejected
// immediately when no server is available (no cross-server queueing and no
// wait-and-retry exists).
type Request struct {
	ID          int64   // Unique identifier, assigned in arrival order
	ArrivalTime float64 // Virtual time at which the request entered the system

	Outcome        RequestOutcome
	CompletionTime float64 // Set once, when the outcome becomes completed
	Latency        float64 // CompletionTime - ArrivalTime for completed requests
}

// String returns a human-readable representation of a Request.
func (r Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, Outcome: %s, ArrivalTime: %.6f)", r.ID, r.Outcome, r.ArrivalTime)
}
