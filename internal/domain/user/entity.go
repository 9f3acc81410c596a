package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		ID         UUID
		Name       string
		Email      string
		NationalID string
		BirthDate  time.Time
		Phone      string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

// CreateUserInput is a validated, normalized creation payload.
type CreateUserInput struct {
	Name       string
	Email      string
	NationalID string
	BirthDate  time.Time
	Phone      string
}

// UpdateUserInput carries only the fields an update may touch.
// A nil field means "leave as is". NationalID and BirthDate are
// immutable after creation and have no update path.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Phone *string
}

func (in UpdateUserInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Phone == nil
}
