package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

const maxSkills = 25

func ValidateSignup(
	firstName, lastName, email, password string,
	age *int,
	gender, photoURL, description string,
	skills []string,
) ValidationErrors {
	errs := make(ValidationErrors)

	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		errs.Add("firstName", "First name is required")
	} else if len(firstName) < 4 || len(firstName) > 50 {
		errs.Add("firstName", "First name must be between 4 and 50 characters")
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		errs.Add("lastName", "Last name is required")
	} else if len(lastName) > 50 {
		errs.Add("lastName", "Last name cannot exceed 50 characters")
	}

	validateEmail(email, errs)
	validatePassword("password", password, errs)
	validateOptionalProfileFields(age, gender, photoURL, description, skills, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) > 64 {
		errs.Add("password", "Password must be less than 64 characters")
	}

	return errs
}

// ValidateProfileUpdate checks only the provided fields; nil means the
// field is not being changed.
func ValidateProfileUpdate(
	firstName, lastName *string,
	age *int,
	gender, photoURL, description *string,
	skills *[]string,
) ValidationErrors {
	errs := make(ValidationErrors)

	if firstName != nil {
		name := strings.TrimSpace(*firstName)
		if len(name) < 4 || len(name) > 50 {
			errs.Add("firstName", "First name must be between 4 and 50 characters")
		}
	}

	if lastName != nil {
		name := strings.TrimSpace(*lastName)
		if name == "" || len(name) > 50 {
			errs.Add("lastName", "Last name must be between 1 and 50 characters")
		}
	}

	var genderVal, photoVal, descVal string
	var skillsVal []string
	if gender != nil {
		genderVal = *gender
	}
	if photoURL != nil {
		photoVal = *photoURL
	}
	if description != nil {
		descVal = *description
	}
	if skills != nil {
		skillsVal = *skills
	}
	validateOptionalProfileFields(age, genderVal, photoVal, descVal, skillsVal, errs)

	return errs
}

func ValidatePasswordChange(oldPassword, newPassword string) ValidationErrors {
	errs := make(ValidationErrors)

	if oldPassword == "" {
		errs.Add("oldPassword", "Old password is required")
	}
	validatePassword("newPassword", newPassword, errs)

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email format")
		return
	}
	if len(email) < 6 || len(email) > 25 {
		errs.Add("email", "Email must be between 6 and 25 characters")
	}
}

func validateOptionalProfileFields(
	age *int,
	gender, photoURL, description string,
	skills []string,
	errs ValidationErrors,
) {
	if age != nil && (*age < 18 || *age > 80) {
		errs.Add("age", "Age must be between 18 and 80")
	}

	if gender != "" && gender != "M" && gender != "F" && gender != "Others" {
		errs.Add("gender", "Gender must be one of: M, F, Others")
	}

	if photoURL != "" {
		if u, err := url.ParseRequestURI(strings.TrimSpace(photoURL)); err != nil || u.Host == "" {
			errs.Add("photoUrl", "Photo URL must be a valid URL")
		}
	}

	if description != "" {
		desc := strings.TrimSpace(description)
		if len(desc) < 4 || len(desc) > 400 {
			errs.Add("description", "Description must be between 4 and 400 characters")
		}
	}

	if len(skills) > maxSkills {
		errs.Add("skills", fmt.Sprintf("Skills cannot have more than %d items", maxSkills))
	}
}

func validatePassword(field, password string, errs ValidationErrors) {
	if password == "" {
		errs.Add(field, "Password is required")
		return
	}
	if len(password) < 8 {
		errs.Add(field, "Password must be at least 8 characters")
		return
	}
	if len(password) > 64 {
		errs.Add(field, "Password must be less than 64 characters")
		return
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	missing := []string{}
	if !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "one number")
	}
	if !hasSymbol {
		missing = append(missing, "one symbol")
	}

	if len(missing) > 0 {
		errs.Add(field, fmt.Sprintf("Password must contain at least %s", strings.Join(missing, ", ")))
	}
}
