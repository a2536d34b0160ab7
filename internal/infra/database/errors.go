package database

import "errors"

// Failure taxonomy for the data-access layer. Absence of a row is a normal
// result and is never reported as one of these.
var (
	ErrConnectionFailed  = errors.New("database connection failed")
	ErrQueryFailed       = errors.New("query failed")
	ErrPersistenceFailed = errors.New("persistence failed")
)
