package database

import "github.com/jmoiron/sqlx"

// Dialect identifies which of the two supported SQL engines backs the pool.
// It is read once from configuration; every engine-specific branch in this
// package is resolved from it at construction time, never re-derived.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

func (d Dialect) Valid() bool {
	return d == DialectPostgres || d == DialectMySQL
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == DialectMySQL {
		return "mysql"
	}
	return "postgres"
}

// Rebind translates the `?` placeholders a statement template is written
// with into the positional syntax the dialect's driver expects ($1, $2, ...
// for Postgres; `?` stays as-is for MySQL).
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(d.DriverName()), query)
}

// visitorStatements holds the per-dialect SQL whose text differs beyond
// placeholder syntax: the table DDL and the two write statements.
type visitorStatements struct {
	createTable string
	insert      string
	update      string

	// returning reports whether insert/update echo the written row from the
	// same statement. When false the repository reads the row back after
	// the write.
	returning bool
}

var statementsByDialect = map[Dialect]visitorStatements{
	DialectPostgres: {
		createTable: `CREATE TABLE IF NOT EXISTS visitors (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			purpose TEXT NOT NULL,
			company VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		insert: `INSERT INTO visitors (name, email, phone, purpose, company)
			VALUES (?, ?, ?, ?, ?)
			RETURNING ` + visitorColumns,
		// Postgres has no ON UPDATE column clause, so the refresh of
		// updated_at lives in the statement itself.
		update: `UPDATE visitors
			SET name = ?, email = ?, phone = ?, purpose = ?, company = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
			RETURNING ` + visitorColumns,
		returning: true,
	},
	DialectMySQL: {
		createTable: `CREATE TABLE IF NOT EXISTS visitors (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			purpose TEXT NOT NULL,
			company VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		insert: `INSERT INTO visitors (name, email, phone, purpose, company)
			VALUES (?, ?, ?, ?, ?)`,
		// updated_at refreshes itself via the ON UPDATE column clause.
		update: `UPDATE visitors
			SET name = ?, email = ?, phone = ?, purpose = ?, company = ?
			WHERE id = ?`,
		returning: false,
	},
}
