package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID         uuid.UUID
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
