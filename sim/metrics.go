// Tracks simulation-wide counters and latency samples for final reporting.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation. Counters are monotonic
// and mutated only by the event currently executing. Completed + Failed never
// exceeds Total: every request is counted on arrival and reaches at most one
// terminal outcome.
type Metrics struct {
	TotalRequests     int64     // Requests that have arrived
	CompletedRequests int64     // Requests that finished processing
	FailedRequests    int64     // Requests rejected for lack of an available server
	Latencies         []float64 // One sample per completed request (completion - arrival)
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// AvgLatency returns the mean of exactly the completed-request samples,
// 0 when there are none.
func (m *Metrics) AvgLatency() float64 {
	if len(m.Latencies) == 0 {
		return 0
	}
	return stat.Mean(m.Latencies, nil)
}

// MetricsSnapshot is a pure, non-mutating read of the accumulated metrics
// as of a given virtual time.
type MetricsSnapshot struct {
	Time              float64 // Virtual time the snapshot was taken at
	TotalRequests     int64
	CompletedRequests int64
	FailedRequests    int64
	AvgLatency        float64 // Mean completed-request latency, 0 when none completed
	AvailableServers  int     // Count of servers currently in service
}

// Print displays aggregated metrics at the end of the simulation, including
// latency percentiles across completed requests.
func (m *Metrics) Print(horizon float64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Horizon              : %.2f s\n", horizon)
	fmt.Printf("Total Requests       : %d\n", m.TotalRequests)
	fmt.Printf("Completed Requests   : %d\n", m.CompletedRequests)
	fmt.Printf("Failed Requests      : %d\n", m.FailedRequests)
	if len(m.Latencies) > 0 {
		sorted := make([]float64, len(m.Latencies))
		copy(sorted, m.Latencies)
		sort.Float64s(sorted)

		fmt.Printf("Average Latency      : %.4f s\n", m.AvgLatency())
		fmt.Printf("P50 Latency          : %.4f s\n", stat.Quantile(0.50, stat.Empirical, sorted, nil))
		fmt.Printf("P95 Latency          : %.4f s\n", stat.Quantile(0.95, stat.Empirical, sorted, nil))
		fmt.Printf("P99 Latency          : %.4f s\n", stat.Quantile(0.99, stat.Empirical, sorted, nil))
	}
}
