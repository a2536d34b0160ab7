package entity

import "time"

// Visitor is the canonical check-in record. The id and both timestamps are
// assigned by the database engine, never by application code.
type Visitor struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Purpose   string    `json:"purpose" db:"purpose"`
	Company   *string   `json:"company" db:"company"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// VisitorFields holds the five writable columns. Phone and Company are
// optional; empty strings are persisted as NULL.
type VisitorFields struct {
	Name    string
	Email   string
	Phone   string
	Purpose string
	Company string
}
