package domain

import "errors"

// Common domain errors used across the entity files.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrNegativeQuantity is returned when an ingredient quantity is negative.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")

	// ErrNegativePotency is returned when a per-gram potency value is negative.
	ErrNegativePotency = errors.New("potency cannot be negative")

	// ErrNegativeServings is returned when a servings count is negative.
	ErrNegativeServings = errors.New("servings cannot be negative")
)
