package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/librarium/librarium/internal/metrics"
	"github.com/librarium/librarium/internal/model"
	"github.com/librarium/librarium/internal/store"
)

// CatalogService handles book catalog business logic. Availability is
// derived state owned by the loan workflow; catalog operations never toggle
// it on their own.
type CatalogService struct {
	books   *store.Store[model.Book]
	loans   *store.Store[model.Loan]
	metrics metrics.Recorder
}

// NewCatalogService creates a new CatalogService. The loan store is
// consulted read-only, for popularity ranking.
func NewCatalogService(books *store.Store[model.Book], loans *store.Store[model.Loan], recorder metrics.Recorder) *CatalogService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CatalogService{
		books:   books,
		loans:   loans,
		metrics: recorder,
	}
}

// CreateBookInput defines input for adding a book.
type CreateBookInput struct {
	Title  string
	Author string
	Genre  string
	Year   int
}

// Add creates a new book. New books start out available.
func (s *CatalogService) Add(ctx context.Context, input CreateBookInput) (*model.Book, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title", ErrBlankField)
	}
	if strings.TrimSpace(input.Author) == "" {
		return nil, fmt.Errorf("%w: author", ErrBlankField)
	}

	book := model.Book{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Author:    input.Author,
		Genre:     input.Genre,
		Year:      input.Year,
		Available: true,
	}

	err := s.books.Update(func(books []model.Book) []model.Book {
		return append(books, book)
	})
	if err != nil {
		return nil, fmt.Errorf("add book: %w", err)
	}

	s.metrics.IncBookAdded()
	return &book, nil
}

// Update replaces the stored book with the same id. The id itself is
// immutable; an unknown id is reported, not silently ignored.
func (s *CatalogService) Update(ctx context.Context, book model.Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return fmt.Errorf("%w: title", ErrBlankField)
	}
	if strings.TrimSpace(book.Author) == "" {
		return fmt.Errorf("%w: author", ErrBlankField)
	}

	found := false
	err := s.books.Update(func(books []model.Book) []model.Book {
		for i := range books {
			if books[i].ID == book.ID {
				books[i] = book
				found = true
				break
			}
		}
		return books
	})
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if !found {
		return ErrBookNotFound
	}
	return nil
}

// Delete removes a book. Loans referencing the book are left in place
// (no cascade); readers of loan data must treat a missing book as gone.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	found := false
	err := s.books.Update(func(books []model.Book) []model.Book {
		kept := books[:0]
		for _, b := range books {
			if b.ID == id {
				found = true
				continue
			}
			kept = append(kept, b)
		}
		return kept
	})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if !found {
		return ErrBookNotFound
	}

	s.metrics.IncBookDeleted()
	return nil
}

// List returns a snapshot of all books.
func (s *CatalogService) List(ctx context.Context) []model.Book {
	return s.books.Items()
}

// GetByID returns the book with the given id.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	for _, b := range s.books.Items() {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, ErrBookNotFound
}

// Search returns books whose title, author or genre contains the query,
// case-insensitively. The fields are matched with OR semantics.
func (s *CatalogService) Search(ctx context.Context, query string) []model.Book {
	q := strings.ToLower(query)

	var matched []model.Book
	for _, b := range s.books.Items() {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Genre), q) {
			matched = append(matched, b)
		}
	}
	return matched
}

// ListAvailable returns the books not currently lent out.
func (s *CatalogService) ListAvailable(ctx context.Context) []model.Book {
	var available []model.Book
	for _, b := range s.books.Items() {
		if b.Available {
			available = append(available, b)
		}
	}
	return available
}

// TotalBooks returns the catalog size.
func (s *CatalogService) TotalBooks(ctx context.Context) int {
	return s.books.Len()
}

// AvailableCount returns how many books are currently available.
func (s *CatalogService) AvailableCount(ctx context.Context) int {
	count := 0
	for _, b := range s.books.Items() {
		if b.Available {
			count++
		}
	}
	return count
}

// MostPopular returns up to limit books ranked by descending count of
// historical loans. Ties are broken by book id ascending so the ranking is
// deterministic. Loans referencing deleted books are counted but produce no
// result entry.
func (s *CatalogService) MostPopular(ctx context.Context, limit int) []model.Book {
	counts := make(map[string]int)
	for _, l := range s.loans.Items() {
		counts[l.BookID]++
	}

	type tally struct {
		bookID string
		loans  int
	}
	ranked := make([]tally, 0, len(counts))
	for id, n := range counts {
		ranked = append(ranked, tally{bookID: id, loans: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].loans != ranked[j].loans {
			return ranked[i].loans > ranked[j].loans
		}
		return ranked[i].bookID < ranked[j].bookID
	})

	books := s.books.Items()
	byID := make(map[string]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	var popular []model.Book
	for _, t := range ranked {
		if len(popular) == limit {
			break
		}
		if b, ok := byID[t.bookID]; ok {
			popular = append(popular, b)
		}
	}
	return popular
}
