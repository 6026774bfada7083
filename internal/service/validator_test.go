package service_test

import (
	"strings"
	"testing"

	"github.com/missionctl/missionctl/internal/domain"
	"github.com/missionctl/missionctl/internal/service"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid", "Fix bug", nil},
		{"empty", "", domain.ErrInvalidTitle},
		{"at length bound", strings.Repeat("a", 500), nil},
		{"over length bound", strings.Repeat("a", 501), domain.ErrInvalidTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateTitle(tt.title)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	for _, status := range []domain.TaskStatus{
		domain.TaskStatusBacklog,
		domain.TaskStatusTodo,
		domain.TaskStatusInProgress,
		domain.TaskStatusDone,
		domain.TaskStatusCancelled,
	} {
		require.NoError(t, service.ValidateStatus(status))
	}

	require.ErrorIs(t, service.ValidateStatus("archived"), domain.ErrInvalidStatus)
	require.ErrorIs(t, service.ValidateStatus("DONE"), domain.ErrInvalidStatus)
	require.ErrorIs(t, service.ValidateStatus(""), domain.ErrInvalidStatus)
}

func TestValidatePriority(t *testing.T) {
	tests := []struct {
		priority int
		wantErr  bool
	}{
		{-1, true},
		{0, false},
		{5, false},
		{10, false},
		{11, true},
	}

	for _, tt := range tests {
		err := service.ValidatePriority(tt.priority)
		if tt.wantErr {
			require.ErrorIs(t, err, domain.ErrInvalidPriority, "priority %d", tt.priority)
		} else {
			require.NoError(t, err, "priority %d", tt.priority)
		}
	}
}
