package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateVisitorInput checks the request fields before anything reaches
// the data layer. Returns every violation found, not just the first.
func ValidateVisitorInput(input VisitorInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if utf8.RuneCountInString(input.Name) > 255 {
		errors = append(errors, ValidationError{"name", "must not exceed 255 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.Purpose) == "" {
		errors = append(errors, ValidationError{"purpose", "is required"})
	}

	// column limits are character counts, so measure runes, not bytes
	if utf8.RuneCountInString(input.Company) > 255 {
		errors = append(errors, ValidationError{"company", "must not exceed 255 characters"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	return len(cleaned) >= 10 && len(cleaned) <= 11
}
