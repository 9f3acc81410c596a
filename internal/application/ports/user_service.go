package ports

import (
	"context"

	"user-registration-api/internal/application/validation"
	"user-registration-api/internal/domain/user"
)

// UserService is the boundary contract exposed to the HTTP adapter.
// Failures are the typed domain errors: ValidationError, ConflictError,
// NotFoundError; anything else is an internal store failure.
type UserService interface {
	CreateUser(ctx context.Context, req validation.CreateUserRequest) (*user.User, error)
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	ListUsers(ctx context.Context) (user.Users, error)
	UpdateUser(ctx context.Context, id string, req validation.UpdateUserRequest) (*user.User, error)
	DeleteUser(ctx context.Context, id string) error
}
