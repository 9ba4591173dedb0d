// Package sim provides the core discrete-event simulation engine for the
// high-load web service model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - eventqueue.go: virtual clock and the (time, insertion order) event heap
//   - event.go: event types that drive the simulation (arrival, service, failure, recovery)
//   - model.go: the Model orchestrator, event loop, and snapshot reads
//
// # Architecture
//
// The engine is single-threaded by design. Concurrency is expressed purely as
// interleaved cooperative processes: each domain process (arrival generation,
// per-request handling, server failure/recovery) is a small state machine whose
// steps are Events popped one at a time off the queue. An event runs to
// completion before any other event executes, so a check-then-act sequence
// inside one Execute is atomic with respect to every other process. Events
// scheduled for the same virtual time run strictly in insertion order.
//
// External callers touch only three operations: NewModel, AdvanceTo, and
// Snapshot. The sweep optimizer in sim/sweep consumes exactly this contract.
package sim
