// Models a single-capacity server resource with an independent up/down
// status mutated by the failure process.

package sim

import "fmt"

// ServerStatus represents the operational state of a server.
type ServerStatus string

const (
	ServerUp   ServerStatus = "up"
	ServerDown ServerStatus = "down"
)

// Server is a single-capacity mutual-exclusion unit. Status and busy are
// mutated only by the event currently executing, so no locking is needed.
//
// Invariants:
//   - a server transitions Up -> Down only while busy == false
//   - busy == true implies status == Up
type Server struct {
	index  int
	status ServerStatus
	busy   bool
}

// NewServer creates a server in service and idle.
func NewServer(index int) *Server {
	return &Server{index: index, status: ServerUp}
}

// Index returns the server's fixed position in the fleet scan order.
func (s *Server) Index() int { return s.index }

// Status returns the server's operational state.
func (s *Server) Status() ServerStatus { return s.status }

// Busy reports whether a request currently holds the server.
func (s *Server) Busy() bool { return s.busy }

// IsAvailable reports whether the server can accept a request right now.
func (s *Server) IsAvailable() bool {
	return s.status == ServerUp && !s.busy
}

// Acquire takes the server for one request. The caller must have confirmed
// IsAvailable() in the same scheduling step; no suspension can intervene
// between the check and the call, so no race is possible.
func (s *Server) Acquire() {
	if !s.IsAvailable() {
		panic(fmt.Sprintf("Acquire: server %d not available (status=%s busy=%v)", s.index, s.status, s.busy))
	}
	s.busy = true
}

// Release frees the server. Always succeeds.
func (s *Server) Release() {
	s.busy = false
}

// SetOutOfService takes the server down. Refused while busy: a held server
// is immune to failure at that instant, and the caller treats the refusal
// as a silently skipped failure attempt.
func (s *Server) SetOutOfService() bool {
	if s.busy {
		return false
	}
	s.status = ServerDown
	return true
}

// SetInService restores the server.
func (s *Server) SetInService() {
	s.status = ServerUp
}

func (s *Server) String() string {
	return fmt.Sprintf("Server: (Index: %d, Status: %s, Busy: %v)", s.index, s.status, s.busy)
}
