// Package service implements the business operations over articles,
// players and image uploads. It validates input, classifies failures into
// a small taxonomy and delegates persistence to the repositories.
package service

import "errors"

// Sentinel errors; handlers map these onto HTTP statuses.
var (
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("invalid input")
)
