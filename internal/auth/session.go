package auth

import (
	"context"
	"sync"

	"github.com/librarium/librarium/internal/model"
)

// Authenticator looks up a user by credential pair.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// Session holds the authenticated user for one interactive session. It is an
// explicit value owned by the caller; the core services never consult it.
type Session struct {
	mu      sync.Mutex
	auth    Authenticator
	current *model.User
}

// NewSession creates a session backed by the given authenticator.
func NewSession(auth Authenticator) *Session {
	return &Session{auth: auth}
}

// Login authenticates the credential pair and records the user as the
// session's current user.
func (s *Session) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return user, nil
}

// Logout clears the current user.
func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns the logged-in user, or nil when nobody is logged in.
func (s *Session) Current() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
