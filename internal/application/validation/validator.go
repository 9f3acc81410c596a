package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"user-registration-api/internal/domain/user"
)

const (
	minNameLen = 3
	maxNameLen = 100

	maxAgeYears   = 150
	birthDateForm = "2006-01-02"
)

var (
	nationalIDRe = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phoneRe      = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
)

type (
	// CreateUserRequest is the raw creation payload before validation.
	CreateUserRequest struct {
		Name       string
		Email      string
		NationalID string
		BirthDate  string
		Phone      string
	}
	// UpdateUserRequest is the raw update payload; every field is
	// optional and absent fields are skipped.
	UpdateUserRequest struct {
		Name  *string
		Email *string
		Phone *string
	}
)

// CreateUser checks the full creation payload and returns it
// normalized (trimmed, email lowercased, birth date parsed), or a
// ValidationError listing every violated field. It never touches
// storage.
func CreateUser(req CreateUserRequest) (user.CreateUserInput, error) {
	errs := make(map[string]string)

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	nationalID := strings.TrimSpace(req.NationalID)
	bdate := strings.TrimSpace(req.BirthDate)
	phone := strings.TrimSpace(req.Phone)

	if reason := checkName(name); reason != "" {
		errs["name"] = reason
	}
	if reason := checkEmail(email); reason != "" {
		errs["email"] = reason
	}
	if !nationalIDRe.MatchString(nationalID) {
		errs["nationalId"] = "must be in the format 000.000.000-00"
	}
	var dob time.Time
	if d, reason := checkBirthDate(bdate); reason != "" {
		errs["birthDate"] = reason
	} else {
		dob = d
	}
	if reason := checkPhone(phone); reason != "" {
		errs["phone"] = reason
	}

	if len(errs) > 0 {
		return user.CreateUserInput{}, &user.ValidationError{Fields: errs}
	}

	return user.CreateUserInput{
		Name:       name,
		Email:      email,
		NationalID: nationalID,
		BirthDate:  dob,
		Phone:      phone,
	}, nil
}

// UpdateUser checks only the fields present in the payload. An empty
// payload is valid and yields an empty input.
func UpdateUser(req UpdateUserRequest) (user.UpdateUserInput, error) {
	errs := make(map[string]string)
	var in user.UpdateUserInput

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if reason := checkName(name); reason != "" {
			errs["name"] = reason
		} else {
			in.Name = &name
		}
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if reason := checkEmail(email); reason != "" {
			errs["email"] = reason
		} else {
			in.Email = &email
		}
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if reason := checkPhone(phone); reason != "" {
			errs["phone"] = reason
		} else {
			in.Phone = &phone
		}
	}

	if len(errs) > 0 {
		return user.UpdateUserInput{}, &user.ValidationError{Fields: errs}
	}

	return in, nil
}

func checkName(name string) string {
	if name == "" {
		return "name is required"
	}
	if l := utf8.RuneCountInString(name); l < minNameLen || l > maxNameLen {
		return "name length must be 3-100 characters"
	}
	return ""
}

func checkEmail(email string) string {
	if email == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "invalid email format"
	}
	return ""
}

func checkPhone(phone string) string {
	if !phoneRe.MatchString(phone) {
		return "must be in the format (00) 00000-0000"
	}
	return ""
}

func checkBirthDate(bdate string) (time.Time, string) {
	if bdate == "" {
		return time.Time{}, "birthDate is required"
	}
	dob, err := time.Parse(birthDateForm, bdate)
	if err != nil {
		return time.Time{}, "must be a real date in the format YYYY-MM-DD"
	}
	age := wholeYears(dob, time.Now().UTC())
	if age < 0 || age > maxAgeYears {
		return time.Time{}, "implied age must be between 0 and 150 years"
	}
	return dob, ""
}

func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() ||
		(to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
