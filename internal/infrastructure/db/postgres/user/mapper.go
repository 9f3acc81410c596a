package user

import (
	domain "user-registration-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:         model.ID,
		Name:       model.Name,
		Email:      model.Email,
		NationalID: model.NationalID,
		BirthDate:  model.BirthDate,
		Phone:      model.Phone,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
