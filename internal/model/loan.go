package model

import "time"

// LoanStatus represents the computed status of a loan.
type LoanStatus string

const (
	LoanStatusOpen     LoanStatus = "open"
	LoanStatusReturned LoanStatus = "returned"
)

// DateLayout is the calendar-date format used everywhere a loan date is
// rendered or persisted.
const DateLayout = "2006-01-02"

// Loan represents one borrowing of a book by a user.
//
// LoanDate, DueDate and ReturnDate carry calendar dates only (midnight UTC).
// ReturnDate nil means the loan is open. Penalty is set exactly once, when
// the loan is returned.
type Loan struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	BookID     string     `json:"book_id"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Penalty    float64    `json:"penalty"`
}

// Status computes the current status of the loan.
func (l *Loan) Status() LoanStatus {
	if l.ReturnDate != nil {
		return LoanStatusReturned
	}
	return LoanStatusOpen
}

// IsOpen returns true if the loan has not been returned yet.
func (l *Loan) IsOpen() bool {
	return l.ReturnDate == nil
}

// IsOverdueAt returns true if the loan is open and its due date lies
// strictly before the given day.
func (l *Loan) IsOverdueAt(today time.Time) bool {
	return l.IsOpen() && l.DueDate.Before(DateOnly(today))
}

// DaysLate returns the number of whole days the given return day lies after
// the due date, never negative.
func (l *Loan) DaysLate(returned time.Time) int {
	days := int(DateOnly(returned).Sub(DateOnly(l.DueDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
