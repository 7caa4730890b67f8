package services

import "errors"

// Service errors. Store failures are classified into these at the
// operation boundary; handlers translate them to HTTP statuses and
// never see raw driver errors.
var (
	ErrConflict         = errors.New("already exists")
	ErrUnauthorized     = errors.New("invalid credentials")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNoSeatsAvailable = errors.New("no seats available")
)
