package record

import (
	"fmt"
	"strconv"
	"time"

	"github.com/librarium/librarium/internal/model"
)

// LoanCodec maps Loan entities to the loans file layout.
//
// The trailing returnDate and penalty columns are optional: returnDate is
// empty while the loan is open, and rows written by older versions may omit
// the columns entirely.
type LoanCodec struct{}

// Header returns the loans column order.
func (LoanCodec) Header() []string {
	return []string{"id", "userId", "bookId", "loanDate", "dueDate", "returnDate", "penalty"}
}

// Encode renders one loan as a row.
func (LoanCodec) Encode(l model.Loan) []string {
	returnDate := ""
	if l.ReturnDate != nil {
		returnDate = l.ReturnDate.Format(model.DateLayout)
	}

	penalty := "0.0"
	if l.Penalty > 0 {
		penalty = strconv.FormatFloat(l.Penalty, 'f', -1, 64)
	}

	return []string{
		l.ID,
		l.UserID,
		l.BookID,
		l.LoanDate.Format(model.DateLayout),
		l.DueDate.Format(model.DateLayout),
		returnDate,
		penalty,
	}
}

// Decode parses one row into a loan.
func (LoanCodec) Decode(fields []string) (model.Loan, error) {
	if len(fields) < 5 {
		return model.Loan{}, fmt.Errorf("%w: want at least 5 fields, got %d", ErrMalformedRecord, len(fields))
	}

	loanDate, err := parseDate(fields[3])
	if err != nil {
		return model.Loan{}, fmt.Errorf("%w: loanDate %q: %v", ErrMalformedRecord, fields[3], err)
	}

	dueDate, err := parseDate(fields[4])
	if err != nil {
		return model.Loan{}, fmt.Errorf("%w: dueDate %q: %v", ErrMalformedRecord, fields[4], err)
	}

	loan := model.Loan{
		ID:       fields[0],
		UserID:   fields[1],
		BookID:   fields[2],
		LoanDate: loanDate,
		DueDate:  dueDate,
	}

	if len(fields) > 5 && fields[5] != "" {
		returnDate, err := parseDate(fields[5])
		if err != nil {
			return model.Loan{}, fmt.Errorf("%w: returnDate %q: %v", ErrMalformedRecord, fields[5], err)
		}
		loan.ReturnDate = &returnDate
	}

	if len(fields) > 6 && fields[6] != "" {
		penalty, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return model.Loan{}, fmt.Errorf("%w: penalty %q: %v", ErrMalformedRecord, fields[6], err)
		}
		loan.Penalty = penalty
	}

	return loan, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(model.DateLayout, s, time.UTC)
}
