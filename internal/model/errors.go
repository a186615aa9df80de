package model

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches the query.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by stores on a uniqueness violation.
	ErrDuplicate = errors.New("already exists")
)
