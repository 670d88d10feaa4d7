package record

import (
	"fmt"

	"github.com/librarium/librarium/internal/model"
)

// UserCodec maps User entities to the users file layout.
type UserCodec struct{}

// Header returns the users column order.
func (UserCodec) Header() []string {
	return []string{"id", "name", "email", "password", "role"}
}

// Encode renders one user as a row.
func (UserCodec) Encode(u model.User) []string {
	return []string{u.ID, u.Name, u.Email, u.Password, string(u.Role)}
}

// Decode parses one row into a user.
func (UserCodec) Decode(fields []string) (model.User, error) {
	if len(fields) < 5 {
		return model.User{}, fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedRecord, len(fields))
	}

	role := model.Role(fields[4])
	if !role.IsValid() {
		return model.User{}, fmt.Errorf("%w: unknown role %q", ErrMalformedRecord, fields[4])
	}

	return model.User{
		ID:       fields[0],
		Name:     fields[1],
		Email:    fields[2],
		Password: fields[3],
		Role:     role,
	}, nil
}
