package store

import "github.com/librarium/librarium/internal/model"

// DefaultUsers returns the fixed development accounts written when the users
// file is first created or found empty. The credentials are a development
// convenience, not a production security control.
func DefaultUsers() []model.User {
	return []model.User{
		{ID: "550e8400-e29b-41d4-a716-446655440001", Name: "Admin User", Email: "admin@library.com", Password: "admin123", Role: model.RoleAdmin},
		{ID: "550e8400-e29b-41d4-a716-446655440008", Name: "Head Librarian", Email: "head@library.com", Password: "head123", Role: model.RoleAdmin},
		{ID: "550e8400-e29b-41d4-a716-446655440004", Name: "Sarah Wilson", Email: "sarah@library.com", Password: "sarah123", Role: model.RoleLibrarian},
		{ID: "550e8400-e29b-41d4-a716-446655440006", Name: "David Brown", Email: "david@library.com", Password: "david123", Role: model.RoleLibrarian},
		{ID: "550e8400-e29b-41d4-a716-446655440010", Name: "Tom Wilson", Email: "tom@library.com", Password: "tom123", Role: model.RoleLibrarian},
		{ID: "550e8400-e29b-41d4-a716-446655440002", Name: "John Doe", Email: "john@library.com", Password: "john123", Role: model.RoleMember},
		{ID: "550e8400-e29b-41d4-a716-446655440003", Name: "Jane Smith", Email: "jane@library.com", Password: "jane123", Role: model.RoleMember},
		{ID: "550e8400-e29b-41d4-a716-446655440005", Name: "Mike Johnson", Email: "mike@library.com", Password: "mike123", Role: model.RoleMember},
		{ID: "550e8400-e29b-41d4-a716-446655440007", Name: "Emily Davis", Email: "emily@library.com", Password: "emily123", Role: model.RoleMember},
		{ID: "550e8400-e29b-41d4-a716-446655440009", Name: "Lisa Anderson", Email: "lisa@library.com", Password: "lisa123", Role: model.RoleMember},
	}
}
