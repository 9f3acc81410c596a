package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID         uuid.UUID `json:"id"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
		NationalID string    `json:"nationalId"`
		BirthDate  string    `json:"birthDate"`
		Phone      string    `json:"phone"`
		CreatedAt  time.Time `json:"createdAt"`
		UpdatedAt  time.Time `json:"updatedAt"`
	}
	Users        []User
	ResponseData struct {
		Data  Users `json:"data"`
		Count int   `json:"count"`
	}
)
