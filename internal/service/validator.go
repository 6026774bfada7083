package service

import (
	"fmt"

	"github.com/missionctl/missionctl/internal/domain"
)

// ValidateTitle rejects empty titles and titles over the length bound.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidTitle)
	}
	if len(title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", domain.ErrInvalidTitle, domain.MaxTitleLength)
	}
	return nil
}

// ValidateStatus rejects statuses outside the recognized set.
func ValidateStatus(status domain.TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return nil
}

// ValidatePriority rejects priorities outside [0, 10].
func ValidatePriority(priority int) error {
	if priority < domain.MinPriority || priority > domain.MaxPriority {
		return fmt.Errorf("%w: %d is outside [%d, %d]", domain.ErrInvalidPriority, priority, domain.MinPriority, domain.MaxPriority)
	}
	return nil
}
