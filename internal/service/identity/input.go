package identity

import (
	"strings"

	"github.com/heartmarshall/memoriaviva-backend/internal/domain"
)

const (
	maxEmailLength    = 254
	maxPasswordLength = 72
)

// ResolveInput holds the credentials presented at login.
type ResolveInput struct {
	Email    string
	Password string
}

// Validate validates the resolve input. Email must already be normalized.
// The password is only inspected when verification is enabled.
func (i ResolveInput) Validate(requirePassword bool) error {
	var errs []domain.FieldError

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(i.Email) > maxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case domain.EmailLocalPart(i.Email) == "" || strings.ContainsAny(i.Email, " \t\n"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if requirePassword {
		switch {
		case i.Password == "":
			errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
		case len(i.Password) > maxPasswordLength:
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
