package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lobbykit/visitor-api/internal/entity"
)

const visitorColumns = "id, name, email, phone, purpose, company, created_at, updated_at"

// VisitorRepository runs the five CRUD operations against whichever engine
// backs the pool. All dialect branching is resolved in the constructor: the
// statements are picked from the dialect's table and rebound to its
// placeholder syntax once, so the operation code paths stay uniform.
type VisitorRepository struct {
	DB *sqlx.DB

	insertStmt string
	updateStmt string
	selectAll  string
	selectByID string
	deleteByID string

	// set when insert/update echo the written row in the same statement
	returning bool
}

func NewVisitorRepository(db *sqlx.DB, dialect Dialect) *VisitorRepository {
	stmts := statementsByDialect[dialect]
	return &VisitorRepository{
		DB:         db,
		insertStmt: dialect.Rebind(stmts.insert),
		updateStmt: dialect.Rebind(stmts.update),
		selectAll: "SELECT " + visitorColumns + " FROM visitors" +
			" ORDER BY created_at DESC, id DESC",
		selectByID: dialect.Rebind("SELECT " + visitorColumns + " FROM visitors WHERE id = ?"),
		deleteByID: dialect.Rebind("DELETE FROM visitors WHERE id = ?"),
		returning:  stmts.returning,
	}
}

// Create inserts a new visitor and returns the stored record, including the
// engine-assigned id and timestamps. On MySQL the insert cannot echo the
// row, so it is read back by the new id; both dialects therefore return
// what the engine actually stored.
func (r *VisitorRepository) Create(ctx context.Context, fields entity.VisitorFields) (*entity.Visitor, error) {
	args := []any{fields.Name, fields.Email, nullString(fields.Phone), fields.Purpose, nullString(fields.Company)}

	if r.returning {
		var v entity.Visitor
		if err := r.DB.GetContext(ctx, &v, r.insertStmt, args...); err != nil {
			return nil, fmt.Errorf("%w: insert visitor: %v", ErrPersistenceFailed, err)
		}
		return &v, nil
	}

	res, err := r.DB.ExecContext(ctx, r.insertStmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: insert visitor: %v", ErrPersistenceFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: read inserted id: %v", ErrPersistenceFailed, err)
	}

	v, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: inserted visitor %d missing on readback", ErrPersistenceFailed, id)
	}
	return v, nil
}

// GetAll returns every visitor, newest first. An empty table yields an
// empty slice, not an error.
func (r *VisitorRepository) GetAll(ctx context.Context) ([]entity.Visitor, error) {
	visitors := []entity.Visitor{}
	if err := r.DB.SelectContext(ctx, &visitors, r.selectAll); err != nil {
		return nil, fmt.Errorf("%w: list visitors: %v", ErrPersistenceFailed, err)
	}
	return visitors, nil
}

// GetByID returns the visitor with the given id, or nil when no row
// matches.
func (r *VisitorRepository) GetByID(ctx context.Context, id int64) (*entity.Visitor, error) {
	var v entity.Visitor
	err := r.DB.GetContext(ctx, &v, r.selectByID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetch visitor %d: %v", ErrPersistenceFailed, id, err)
	}
	return &v, nil
}

// Update overwrites all five writable columns and refreshes updated_at,
// returning the post-update record or nil when the id does not exist. The
// id and created_at columns are never touched.
func (r *VisitorRepository) Update(ctx context.Context, id int64, fields entity.VisitorFields) (*entity.Visitor, error) {
	args := []any{fields.Name, fields.Email, nullString(fields.Phone), fields.Purpose, nullString(fields.Company), id}

	if r.returning {
		var v entity.Visitor
		err := r.DB.GetContext(ctx, &v, r.updateStmt, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: update visitor %d: %v", ErrPersistenceFailed, id, err)
		}
		return &v, nil
	}

	res, err := r.DB.ExecContext(ctx, r.updateStmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: update visitor %d: %v", ErrPersistenceFailed, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: update visitor %d: %v", ErrPersistenceFailed, id, err)
	}
	if affected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

// Delete removes the visitor with the given id and reports whether a row
// was actually removed.
func (r *VisitorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, r.deleteByID, id)
	if err != nil {
		return false, fmt.Errorf("%w: delete visitor %d: %v", ErrPersistenceFailed, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete visitor %d: %v", ErrPersistenceFailed, id, err)
	}
	return affected > 0, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
