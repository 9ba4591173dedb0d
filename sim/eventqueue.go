// sim/eventqueue.go
package sim

// Event is a single step of a simulated process, resumed by the Model's event
// loop. Execute runs to completion before any other event executes; state
// mutated inside Execute needs no locking. A returned error aborts the run
// and propagates out of Model.AdvanceTo.
type Event interface {
	Execute(m *Model) error
}

// eventEntry pairs an Event with its due time and insertion sequence number.
// The sequence breaks ties between events due at the same virtual time, so
// same-time events execute strictly in the order they were scheduled.
type eventEntry struct {
	time float64
	seq  uint64
	ev   Event
}

// EventQueue implements heap.Interface and orders entries by (due time,
// insertion order) ascending.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*eventEntry

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].time != eq[j].time {
		return eq[i].time < eq[j].time
	}
	return eq[i].seq < eq[j].seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*eventEntry))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}
