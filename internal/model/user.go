package model

// Role represents a user's permission level.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "MEMBER"
)

// ValidRoles contains all valid role values.
var ValidRoles = []Role{RoleAdmin, RoleLibrarian, RoleMember}

// IsValid checks if the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleLibrarian || r == RoleMember
}

// User represents a library account.
//
// Email is the login key. Password holds either a bcrypt hash or, for
// accounts carried over from the seed data, the plaintext credential;
// comparison is isolated in the auth package.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // Never serialize
	Role     Role   `json:"role"`
}
