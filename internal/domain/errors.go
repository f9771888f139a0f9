package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidConfidence is returned when a review confidence rating is
	// not one of the known values.
	ErrInvalidConfidence = errors.New("invalid confidence rating")

	// ErrUnknownBadge is returned when a badge ID is not part of the catalog.
	ErrUnknownBadge = errors.New("unknown badge")

	// ErrEmptyAnswer is returned when an answer submission selects no options.
	ErrEmptyAnswer = errors.New("answer must select at least one option")
)
