package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/librarium/librarium/internal/metrics"
	"github.com/librarium/librarium/internal/model"
	"github.com/librarium/librarium/internal/store"
)

// LoanService governs the circulation state machine: a loan is created OPEN
// by Borrow and moves to RETURNED exactly once. It is the only component
// allowed to toggle book availability.
//
// Borrow and Return mutate the loan and book stores as two sequential
// full-file rewrites inside one critical section. The combined write is not
// atomic across the two files: a crash between them leaves the availability
// flag and the loan records inconsistent until operator intervention.
type LoanService struct {
	mu      sync.Mutex
	loans   *store.Store[model.Loan]
	books   *store.Store[model.Book]
	logger  *slog.Logger
	metrics metrics.Recorder

	loanPeriodDays int
	dailyPenalty   float64
	now            func() time.Time
}

// LoanPolicy carries the circulation policy knobs.
type LoanPolicy struct {
	// PeriodDays is the loan period; due date is loan date plus this.
	PeriodDays int
	// DailyPenalty is the charge per whole day late, in currency units.
	DailyPenalty float64
}

// DefaultLoanPolicy is the stock 14-day, 1.0/day policy.
var DefaultLoanPolicy = LoanPolicy{PeriodDays: 14, DailyPenalty: 1.0}

// NewLoanService creates a new LoanService.
func NewLoanService(loans *store.Store[model.Loan], books *store.Store[model.Book], policy LoanPolicy, logger *slog.Logger, recorder metrics.Recorder) *LoanService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanService{
		loans:          loans,
		books:          books,
		logger:         logger,
		metrics:        recorder,
		loanPeriodDays: policy.PeriodDays,
		dailyPenalty:   policy.DailyPenalty,
		now:            time.Now,
	}
}

// Borrow lends the book to the user: the book becomes unavailable and a new
// open loan is created with the due date set one loan period out. Fails with
// ErrBookNotFound or ErrBookUnavailable, leaving both stores untouched.
func (s *LoanService) Borrow(ctx context.Context, userID, bookID string) (*model.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var book *model.Book
	for _, b := range s.books.Items() {
		if b.ID == bookID {
			book = &b
			break
		}
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if !book.Available {
		return nil, ErrBookUnavailable
	}

	today := model.DateOnly(s.now())
	loan := model.Loan{
		ID:       ulid.Make().String(),
		UserID:   userID,
		BookID:   bookID,
		LoanDate: today,
		DueDate:  today.AddDate(0, 0, s.loanPeriodDays),
	}

	err := s.loans.Update(func(loans []model.Loan) []model.Loan {
		return append(loans, loan)
	})
	if err != nil {
		return nil, fmt.Errorf("persist loan: %w", err)
	}

	err = s.books.Update(func(books []model.Book) []model.Book {
		for i := range books {
			if books[i].ID == bookID {
				books[i].Available = false
				break
			}
		}
		return books
	})
	if err != nil {
		// The loan is already on disk; the book store write failed.
		return nil, fmt.Errorf("persist book availability: %w", err)
	}

	s.metrics.IncLoanCreated()
	s.logger.Info("book borrowed",
		"loan_id", loan.ID,
		"user_id", userID,
		"book_id", bookID,
		"due_date", loan.DueDate.Format(model.DateLayout),
	)
	return &loan, nil
}

// Return closes the loan: sets the return date to today, finalizes the
// penalty and makes the book available again. Returns the penalty charged.
// Fails with ErrLoanNotFound or ErrLoanAlreadyReturned; a repeated return
// changes nothing.
//
// A loan whose book has since been deleted is still finalized; the dangling
// reference is logged and no availability flag is touched.
func (s *LoanService) Return(ctx context.Context, loanID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var loan *model.Loan
	for _, l := range s.loans.Items() {
		if l.ID == loanID {
			loan = &l
			break
		}
	}
	if loan == nil {
		return 0, ErrLoanNotFound
	}
	if !loan.IsOpen() {
		return 0, ErrLoanAlreadyReturned
	}

	today := model.DateOnly(s.now())
	penalty := float64(loan.DaysLate(today)) * s.dailyPenalty

	err := s.loans.Update(func(loans []model.Loan) []model.Loan {
		for i := range loans {
			if loans[i].ID == loanID {
				returned := today
				loans[i].ReturnDate = &returned
				loans[i].Penalty = penalty
				break
			}
		}
		return loans
	})
	if err != nil {
		return 0, fmt.Errorf("persist loan return: %w", err)
	}

	bookFound := false
	err = s.books.Update(func(books []model.Book) []model.Book {
		for i := range books {
			if books[i].ID == loan.BookID {
				books[i].Available = true
				bookFound = true
				break
			}
		}
		return books
	})
	if err != nil {
		return 0, fmt.Errorf("persist book availability: %w", err)
	}
	if !bookFound {
		s.logger.Warn("returned loan references missing book",
			"loan_id", loanID,
			"book_id", loan.BookID,
		)
	}

	s.metrics.IncLoanReturned()
	if penalty > 0 {
		s.metrics.AddPenaltyCharged(penalty)
	}
	s.logger.Info("book returned", "loan_id", loanID, "penalty", penalty)
	return penalty, nil
}

// Extend pushes the due date of an open loan out by the given number of
// days. Days must be positive: a due date is never shortened. Fails with
// ErrLoanNotFound or ErrLoanAlreadyReturned.
func (s *LoanService) Extend(ctx context.Context, loanID string, days int) error {
	if days <= 0 {
		return ErrInvalidExtension
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var loan *model.Loan
	for _, l := range s.loans.Items() {
		if l.ID == loanID {
			loan = &l
			break
		}
	}
	if loan == nil {
		return ErrLoanNotFound
	}
	if !loan.IsOpen() {
		return ErrLoanAlreadyReturned
	}

	err := s.loans.Update(func(loans []model.Loan) []model.Loan {
		for i := range loans {
			if loans[i].ID == loanID {
				loans[i].DueDate = loans[i].DueDate.AddDate(0, 0, days)
				break
			}
		}
		return loans
	})
	if err != nil {
		return fmt.Errorf("persist loan extension: %w", err)
	}

	s.metrics.IncLoanExtended()
	return nil
}

// Delete hard-removes a loan record. Book availability is deliberately not
// restored, even for an open loan; use Return to close a loan properly.
func (s *LoanService) Delete(ctx context.Context, loanID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	err := s.loans.Update(func(loans []model.Loan) []model.Loan {
		kept := loans[:0]
		for _, l := range loans {
			if l.ID == loanID {
				found = true
				continue
			}
			kept = append(kept, l)
		}
		return kept
	})
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	if !found {
		return ErrLoanNotFound
	}
	return nil
}

// Update replaces the stored loan with the same id, raw, without
// re-validating the availability invariant.
func (s *LoanService) Update(ctx context.Context, loan model.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	err := s.loans.Update(func(loans []model.Loan) []model.Loan {
		for i := range loans {
			if loans[i].ID == loan.ID {
				loans[i] = loan
				found = true
				break
			}
		}
		return loans
	})
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	if !found {
		return ErrLoanNotFound
	}
	return nil
}

// Append adds a loan record as-is, without touching book availability.
// Intended for restores and imports.
func (s *LoanService) Append(ctx context.Context, loan model.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.loans.Update(func(loans []model.Loan) []model.Loan {
		return append(loans, loan)
	})
	if err != nil {
		return fmt.Errorf("append loan: %w", err)
	}
	return nil
}

// GetByID returns the loan with the given id.
func (s *LoanService) GetByID(ctx context.Context, loanID string) (*model.Loan, error) {
	for _, l := range s.loans.Items() {
		if l.ID == loanID {
			return &l, nil
		}
	}
	return nil, ErrLoanNotFound
}

// List returns a snapshot of all loans.
func (s *LoanService) List(ctx context.Context) []model.Loan {
	return s.loans.Items()
}

// ListActive returns the open loans.
func (s *LoanService) ListActive(ctx context.Context) []model.Loan {
	var active []model.Loan
	for _, l := range s.loans.Items() {
		if l.IsOpen() {
			active = append(active, l)
		}
	}
	return active
}

// ListOverdue returns the open loans whose due date has passed.
func (s *LoanService) ListOverdue(ctx context.Context) []model.Loan {
	today := s.now()

	var overdue []model.Loan
	for _, l := range s.loans.Items() {
		if l.IsOverdueAt(today) {
			overdue = append(overdue, l)
		}
	}
	return overdue
}

// ListByUser returns all loans, open or returned, for one user.
func (s *LoanService) ListByUser(ctx context.Context, userID string) []model.Loan {
	var loans []model.Loan
	for _, l := range s.loans.Items() {
		if l.UserID == userID {
			loans = append(loans, l)
		}
	}
	return loans
}

// ActiveCount returns the number of open loans.
func (s *LoanService) ActiveCount(ctx context.Context) int {
	return len(s.ListActive(ctx))
}

// OverdueCount returns the number of open loans past their due date.
func (s *LoanService) OverdueCount(ctx context.Context) int {
	return len(s.ListOverdue(ctx))
}
