package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to pending", StatusPending, StatusPending, false},
		{"approved to completed", StatusApproved, StatusCompleted, true},
		{"approved to cancelled", StatusApproved, StatusCancelled, true},
		{"approved to approved", StatusApproved, StatusApproved, false},
		{"approved to pending", StatusApproved, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusApproved, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusApproved}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCompleted}).IsActive())
}

func TestIsTargetStatus(t *testing.T) {
	assert.True(t, IsTargetStatus("approved"))
	assert.True(t, IsTargetStatus("cancelled"))
	assert.True(t, IsTargetStatus("completed"))

	// pending не является целевым статусом: записи создаются в нём
	assert.False(t, IsTargetStatus("pending"))
	assert.False(t, IsTargetStatus("APPROVED"))
	assert.False(t, IsTargetStatus(""))
	assert.False(t, IsTargetStatus("unknown"))
}
