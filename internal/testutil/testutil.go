// Package testutil provides shared fixtures and factories for tests.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/librarium/librarium/internal/model"
	"github.com/librarium/librarium/internal/store"
)

// NewLogger returns a logger that discards output.
func NewLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenStores opens the three stores in a fresh temp directory.
func OpenStores(t testing.TB) *store.Stores {
	t.Helper()
	stores, err := store.Open(t.TempDir(), NewLogger(t))
	if err != nil {
		t.Fatalf("open stores: %v", err)
	}
	return stores
}

// Day builds a calendar date (midnight UTC) for test data.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestBook creates a test book with sensible defaults.
func NewTestBook(t testing.TB, title string) model.Book {
	t.Helper()
	return model.Book{
		ID:        UniqueID("book"),
		Title:     title,
		Author:    "Test Author",
		Genre:     "Fiction",
		Year:      2020,
		Available: true,
	}
}

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, email string) model.User {
	t.Helper()
	return model.User{
		ID:       UniqueID("user"),
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
		Role:     model.RoleMember,
	}
}

// NewTestLoan creates an open test loan for the given book and user.
func NewTestLoan(t testing.TB, userID, bookID string, loanDate time.Time) model.Loan {
	t.Helper()
	return model.Loan{
		ID:       UniqueID("loan"),
		UserID:   userID,
		BookID:   bookID,
		LoanDate: loanDate,
		DueDate:  loanDate.AddDate(0, 0, 14),
	}
}

var idSeq atomic.Uint64

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, idSeq.Add(1))
}
