// Package record converts entity collections to and from their flat-file
// representation: one header row, then one comma-separated row per entity.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedRecord indicates a data row could not be decoded.
var ErrMalformedRecord = errors.New("malformed record")

// Codec maps one entity kind to and from its row representation.
// Column order is fixed per kind and matched positionally on decode.
type Codec[T any] interface {
	// Header returns the column names written as the first row.
	Header() []string
	// Encode renders one entity as a row.
	Encode(entity T) []string
	// Decode parses one row into an entity.
	Decode(fields []string) (T, error)
}

// WriteAll writes the header row followed by every entity.
func WriteAll[T any](w io.Writer, codec Codec[T], entities []T) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(codec.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, entity := range entities {
		if err := cw.Write(codec.Encode(entity)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadAll parses a whole file. The first row is the header and is skipped
// unconditionally; it is not validated against the expected schema. A single
// malformed row fails the entire read.
func ReadAll[T any](r io.Reader, codec Codec[T]) ([]T, error) {
	cr := csv.NewReader(r)
	// Optional trailing columns may be absent in legacy files.
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var entities []T
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		entity, err := codec.Decode(fields)
		if err != nil {
			return nil, fmt.Errorf("decode line %d: %w", line, err)
		}
		entities = append(entities, entity)
	}

	return entities, nil
}
