package client

import (
	"fmt"
	"strings"

	"github.com/voxelia/landing/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned by Submit when required fields are empty.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateSubmission applies the form's required-field constraints. Phone is
// free text, so only presence is checked.
func ValidateSubmission(s entity.ContactSubmission) ValidationErrors {
	var errs ValidationErrors
	for _, field := range s.MissingFields() {
		errs = append(errs, ValidationError{Field: field, Message: "is required"})
	}
	return errs
}
