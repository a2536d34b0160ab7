package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// EnsureVisitorsTable creates the visitors table if it does not exist yet.
// Safe to run at every startup; after the first successful run it is a
// no-op. Runs before any CRUD operation is accepted.
func EnsureVisitorsTable(db *sqlx.DB, dialect Dialect) error {
	stmts, ok := statementsByDialect[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	if _, err := db.Exec(stmts.createTable); err != nil {
		return fmt.Errorf("%w: initialize visitors table: %v", ErrQueryFailed, err)
	}

	log.Println("Visitors table initialized")
	return nil
}
