package validators

import (
	"context"
	"unicode"

	"github.com/jasonyi-dev/ganttrack/models"
)

const (
	minUsernameLength = 4
	maxUsernameLength = 32
	minPasswordLength = 8
	maxPasswordLength = 32
)

// CredentialsValidator enforces the registration rules for usernames and
// passwords. Login requests bypass it: an account that exists was valid
// when it was created.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials) error {
	if err := validateUsername(creds.Username); err != nil {
		return err
	}

	return validatePassword(creds.Password)
}

func validateUsername(username string) error {
	runes := []rune(username)
	switch {
	case len(runes) > maxUsernameLength:
		return ErrUsernameTooLong
	case len(runes) < minUsernameLength:
		return ErrUsernameTooShort
	}

	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}

	return ErrUsernameNotAlnum
}

func validatePassword(password string) error {
	runes := []rune(password)
	if len(runes) < minPasswordLength || len(runes) > maxPasswordLength {
		return ErrPasswordLength
	}

	var hasUpper, hasLower, hasDigit, hasLetter, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
			hasLetter = true
		case unicode.IsLower(r):
			hasLower = true
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordNoUppercase
	case !hasLower:
		return ErrPasswordNoLowercase
	case !hasDigit:
		return ErrPasswordNoDigit
	case !hasLetter:
		return ErrPasswordNoLetter
	case !hasSpecial:
		return ErrPasswordNoSpecial
	}

	return nil
}
