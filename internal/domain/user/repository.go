package user

import (
	"context"
)

// Repository is the persistence port. Lookups return (nil, nil) when
// no row matches; absence is not an error at this layer.
type Repository interface {
	Create(ctx context.Context, in CreateUserInput) (*User, error)
	FindByID(ctx context.Context, id UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByNationalID(ctx context.Context, nationalID string) (*User, error)
	FindAll(ctx context.Context) (Users, error)
	Update(ctx context.Context, id UUID, in UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id UUID) (bool, error)
}
