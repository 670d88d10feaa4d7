package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/librarium/librarium/internal/auth"
	"github.com/librarium/librarium/internal/model"
	"github.com/librarium/librarium/internal/store"
)

// MembershipService handles user account business logic.
type MembershipService struct {
	users *store.Store[model.User]
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(users *store.Store[model.User]) *MembershipService {
	return &MembershipService{users: users}
}

// CreateUserInput defines input for adding a user. Password is stored as
// given; callers wanting hashed credentials pass an auth.HashPassword result.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// Add creates a new user account. Duplicate emails are not prevented;
// authentication finds the first match.
func (s *MembershipService) Add(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := validateUserFields(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, input.Role)
	}

	user := model.User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	}

	err := s.users.Update(func(users []model.User) []model.User {
		return append(users, user)
	})
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	return &user, nil
}

// Update replaces the stored user with the same id.
func (s *MembershipService) Update(ctx context.Context, user model.User) error {
	if err := validateUserFields(user.Name, user.Email, user.Password); err != nil {
		return err
	}
	if !user.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, user.Role)
	}

	found := false
	err := s.users.Update(func(users []model.User) []model.User {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = user
				found = true
				break
			}
		}
		return users
	})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user account. Loans referencing the user are left in
// place (no cascade).
func (s *MembershipService) Delete(ctx context.Context, id string) error {
	found := false
	err := s.users.Update(func(users []model.User) []model.User {
		kept := users[:0]
		for _, u := range users {
			if u.ID == id {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		return kept
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

// List returns a snapshot of all users.
func (s *MembershipService) List(ctx context.Context) []model.User {
	return s.users.Items()
}

// GetByID returns the user with the given id.
func (s *MembershipService) GetByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range s.users.Items() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Authenticate looks up a user by credential pair. Email is matched by
// exact equality; the first match wins when duplicates exist.
func (s *MembershipService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	for _, u := range s.users.Items() {
		if u.Email == email && auth.VerifyCredential(u.Password, password) {
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func validateUserFields(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", ErrBlankField)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email", ErrBlankField)
	}
	if password == "" {
		return fmt.Errorf("%w: password", ErrBlankField)
	}
	return nil
}
