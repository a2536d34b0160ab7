package usecase

import (
	"strings"

	"github.com/lobbykit/visitor-api/internal/entity"
)

// VisitorInput is the request body for create and update. Phone and company
// are optional.
type VisitorInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Purpose string `json:"purpose"`
	Company string `json:"company"`
}

// Fields converts the validated input into the writable column set.
func (in VisitorInput) Fields() entity.VisitorFields {
	return entity.VisitorFields{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Purpose: strings.TrimSpace(in.Purpose),
		Company: strings.TrimSpace(in.Company),
	}
}
