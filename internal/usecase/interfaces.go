package usecase

import (
	"context"

	"github.com/lobbykit/visitor-api/internal/entity"
)

// VisitorRepositoryInterface is the narrow contract the HTTP layer calls
// through. GetByID and Update return nil (no error) when the id does not
// exist; Delete reports whether a row was removed.
type VisitorRepositoryInterface interface {
	Create(ctx context.Context, fields entity.VisitorFields) (*entity.Visitor, error)
	GetAll(ctx context.Context) ([]entity.Visitor, error)
	GetByID(ctx context.Context, id int64) (*entity.Visitor, error)
	Update(ctx context.Context, id int64, fields entity.VisitorFields) (*entity.Visitor, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
