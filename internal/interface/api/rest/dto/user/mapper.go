package user

import (
	"user-registration-api/internal/application/validation"
	"user-registration-api/internal/domain/user"
)

const birthDateForm = "2006-01-02"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:         uDomain.ID,
		Name:       uDomain.Name,
		Email:      uDomain.Email,
		NationalID: uDomain.NationalID,
		BirthDate:  uDomain.BirthDate.Format(birthDateForm),
		Phone:      uDomain.Phone,
		CreatedAt:  uDomain.CreatedAt,
		UpdatedAt:  uDomain.UpdatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToCreateRequest(req CreateRequest) validation.CreateUserRequest {
	return validation.CreateUserRequest{
		Name:       req.Name,
		Email:      req.Email,
		NationalID: req.NationalID,
		BirthDate:  req.BirthDate,
		Phone:      req.Phone,
	}
}

func ToUpdateRequest(req UpdateRequest) validation.UpdateUserRequest {
	return validation.UpdateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
}
