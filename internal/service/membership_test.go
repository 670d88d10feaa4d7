package service

import (
	"context"
	"errors"
	"testing"

	"github.com/librarium/librarium/internal/auth"
	"github.com/librarium/librarium/internal/model"
	"github.com/librarium/librarium/internal/testutil"
)

func TestMembership_AddAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := testutil.OpenStores(t)
	members := NewMembershipService(stores.Users)

	user, err := members.Add(ctx, CreateUserInput{Name: "Ada", Email: "ada@library.com", Password: "ada123", Role: model.RoleLibrarian})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if user.ID == "" {
		t.Error("Add must assign an id")
	}

	got, err := members.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "ada@library.com" || got.Role != model.RoleLibrarian {
		t.Errorf("GetByID = %+v, want the added user", got)
	}
}

func TestMembership_Add_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := testutil.OpenStores(t)
	members := NewMembershipService(stores.Users)

	cases := []struct {
		name  string
		input CreateUserInput
		want  error
	}{
		{name: "blank name", input: CreateUserInput{Name: " ", Email: "a@b.c", Password: "x", Role: model.RoleMember}, want: ErrBlankField},
		{name: "blank email", input: CreateUserInput{Name: "Ada", Email: "", Password: "x", Role: model.RoleMember}, want: ErrBlankField},
		{name: "blank password", input: CreateUserInput{Name: "Ada", Email: "a@b.c", Password: "", Role: model.RoleMember}, want: ErrBlankField},
		{name: "bad role", input: CreateUserInput{Name: "Ada", Email: "a@b.c", Password: "x", Role: "WIZARD"}, want: ErrInvalidRole},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := members.Add(ctx, tc.input); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestMembership_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := testutil.OpenStores(t)
	members := NewMembershipService(stores.Users)

	user, err := members.Add(ctx, CreateUserInput{Name: "Ada", Email: "ada@library.com", Password: "ada123", Role: model.RoleMember})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	user.Role = model.RoleLibrarian
	if err := members.Update(ctx, *user); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := members.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Role != model.RoleLibrarian {
		t.Errorf("Role = %s, want LIBRARIAN", got.Role)
	}

	if err := members.Update(ctx, model.User{ID: "missing", Name: "X", Email: "x@y.z", Password: "p", Role: model.RoleMember}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("update unknown id: err = %v, want ErrUserNotFound", err)
	}

	if err := members.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := members.GetByID(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("get after delete: err = %v, want ErrUserNotFound", err)
	}
	if err := members.Delete(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("second delete: err = %v, want ErrUserNotFound", err)
	}
}

func TestMembership_Authenticate_SeededAccounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := testutil.OpenStores(t)
	members := NewMembershipService(stores.Users)

	user, err := members.Authenticate(ctx, "admin@library.com", "admin123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("Role = %s, want ADMIN", user.Role)
	}

	if _, err := members.Authenticate(ctx, "admin@library.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := members.Authenticate(ctx, "nobody@library.com", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestMembership_Authenticate_BcryptAccount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := testutil.OpenStores(t)
	members := NewMembershipService(stores.Users)

	hash, err := auth.HashPassword("swordfish")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if _, err := members.Add(ctx, CreateUserInput{Name: "Op", Email: "op@library.com", Password: hash, Role: model.RoleAdmin}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := members.Authenticate(ctx, "op@library.com", "swordfish"); err != nil {
		t.Errorf("Authenticate against bcrypt credential: %v", err)
	}
	if _, err := members.Authenticate(ctx, "op@library.com", hash); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("hash literal must not authenticate, err = %v", err)
	}
}

func TestMembership_Authenticate_FirstMatchWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := testutil.OpenStores(t)
	members := NewMembershipService(stores.Users)

	dupes := []model.User{
		{ID: "first", Name: "First", Email: "dupe@library.com", Password: "pw", Role: model.RoleMember},
		{ID: "second", Name: "Second", Email: "dupe@library.com", Password: "pw", Role: model.RoleAdmin},
	}
	if err := stores.Users.Replace(dupes); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	user, err := members.Authenticate(ctx, "dupe@library.com", "pw")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != "first" {
		t.Errorf("authenticated user = %s, want the first match", user.ID)
	}
}

func TestMembership_SessionLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stores := testutil.OpenStores(t)
	members := NewMembershipService(stores.Users)
	session := auth.NewSession(members)

	user, err := session.Login(ctx, "sarah@library.com", "sarah123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != model.RoleLibrarian {
		t.Errorf("Role = %s, want LIBRARIAN", user.Role)
	}

	session.Logout()
	if session.Current() != nil {
		t.Error("Logout must clear the session")
	}
}
