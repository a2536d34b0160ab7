package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // Postgres driver
)

const connectTimeout = 2 * time.Second

// NewDBConnection opens the pool for the configured dialect and verifies
// liveness with a ping before handing it to the caller.
func NewDBConnection(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Dialect.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	// Pool bounds: Postgres tolerates a larger ceiling than MySQL here.
	if cfg.Dialect == DialectMySQL {
		db.SetMaxOpenConns(10)
	} else {
		db.SetMaxOpenConns(20)
	}
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(30 * time.Second)

	if err := TestConnection(db, cfg.Dialect); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// TestConnection acquires one connection and round-trips a ping. The result
// is logged for the operator either way; failure aborts startup.
func TestConnection(db *sqlx.DB, dialect Dialect) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Printf("Database connection failed: %v", err)
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	log.Printf("%s database connected successfully", dialect)
	return nil
}
