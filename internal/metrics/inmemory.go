package metrics

import (
	"math"
	"sync/atomic"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	BooksAdded          uint64
	BooksDeleted        uint64
	LoansCreated        uint64
	LoansReturned       uint64
	LoansExtended       uint64
	PenaltyChargedTotal float64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	booksAdded       uint64
	booksDeleted     uint64
	loansCreated     uint64
	loansReturned    uint64
	loansExtended    uint64
	penaltyTotalBits uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		BooksAdded:          atomic.LoadUint64(&m.booksAdded),
		BooksDeleted:        atomic.LoadUint64(&m.booksDeleted),
		LoansCreated:        atomic.LoadUint64(&m.loansCreated),
		LoansReturned:       atomic.LoadUint64(&m.loansReturned),
		LoansExtended:       atomic.LoadUint64(&m.loansExtended),
		PenaltyChargedTotal: math.Float64frombits(atomic.LoadUint64(&m.penaltyTotalBits)),
	}
}

// IncBookAdded increments the book added counter.
func (m *InMemoryRecorder) IncBookAdded() {
	atomic.AddUint64(&m.booksAdded, 1)
}

// IncBookDeleted increments the book deleted counter.
func (m *InMemoryRecorder) IncBookDeleted() {
	atomic.AddUint64(&m.booksDeleted, 1)
}

// IncLoanCreated increments the loan created counter.
func (m *InMemoryRecorder) IncLoanCreated() {
	atomic.AddUint64(&m.loansCreated, 1)
}

// IncLoanReturned increments the loan returned counter.
func (m *InMemoryRecorder) IncLoanReturned() {
	atomic.AddUint64(&m.loansReturned, 1)
}

// IncLoanExtended increments the loan extended counter.
func (m *InMemoryRecorder) IncLoanExtended() {
	atomic.AddUint64(&m.loansExtended, 1)
}

// AddPenaltyCharged adds to the running penalty total.
func (m *InMemoryRecorder) AddPenaltyCharged(amount float64) {
	for {
		old := atomic.LoadUint64(&m.penaltyTotalBits)
		updated := math.Float64bits(math.Float64frombits(old) + amount)
		if atomic.CompareAndSwapUint64(&m.penaltyTotalBits, old, updated) {
			return
		}
	}
}
