package record

import (
	"fmt"
	"strconv"

	"github.com/librarium/librarium/internal/model"
)

// BookCodec maps Book entities to the books file layout.
type BookCodec struct{}

// Header returns the books column order.
func (BookCodec) Header() []string {
	return []string{"id", "title", "author", "genre", "year", "available"}
}

// Encode renders one book as a row.
func (BookCodec) Encode(b model.Book) []string {
	return []string{
		b.ID,
		b.Title,
		b.Author,
		b.Genre,
		strconv.Itoa(b.Year),
		strconv.FormatBool(b.Available),
	}
}

// Decode parses one row into a book.
func (BookCodec) Decode(fields []string) (model.Book, error) {
	if len(fields) < 6 {
		return model.Book{}, fmt.Errorf("%w: want 6 fields, got %d", ErrMalformedRecord, len(fields))
	}

	year, err := strconv.Atoi(fields[4])
	if err != nil {
		return model.Book{}, fmt.Errorf("%w: year %q: %v", ErrMalformedRecord, fields[4], err)
	}

	available, err := strconv.ParseBool(fields[5])
	if err != nil {
		return model.Book{}, fmt.Errorf("%w: available %q: %v", ErrMalformedRecord, fields[5], err)
	}

	return model.Book{
		ID:        fields[0],
		Title:     fields[1],
		Author:    fields[2],
		Genre:     fields[3],
		Year:      year,
		Available: available,
	}, nil
}
