package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("invalid task id")
	ErrEmptyUpdate   = errors.New("no fields to update")

	// Validation errors
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")

	// Activity errors
	ErrEmptyEventType = errors.New("event_type is required")

	// Agent profile errors
	ErrProfileNotFound = errors.New("agent profile not found")
)
