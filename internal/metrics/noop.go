package metrics

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

// IncBookAdded does nothing.
func (NoopRecorder) IncBookAdded() {}

// IncBookDeleted does nothing.
func (NoopRecorder) IncBookDeleted() {}

// IncLoanCreated does nothing.
func (NoopRecorder) IncLoanCreated() {}

// IncLoanReturned does nothing.
func (NoopRecorder) IncLoanReturned() {}

// IncLoanExtended does nothing.
func (NoopRecorder) IncLoanExtended() {}

// AddPenaltyCharged does nothing.
func (NoopRecorder) AddPenaltyCharged(float64) {}
