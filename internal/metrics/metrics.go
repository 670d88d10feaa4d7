// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Catalog metrics
	IncBookAdded()
	IncBookDeleted()

	// Circulation metrics
	IncLoanCreated()
	IncLoanReturned()
	IncLoanExtended()
	AddPenaltyCharged(amount float64)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
