package user

type (
	CreateRequest struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		NationalID string `json:"nationalId"`
		BirthDate  string `json:"birthDate"`
		Phone      string `json:"phone"`
	}
	// UpdateRequest fields are pointers so an absent field can be told
	// apart from an empty one.
	UpdateRequest struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
)
