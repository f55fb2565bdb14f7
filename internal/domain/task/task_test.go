package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	tk, err := NewTask("f1", "Organizar estoque", "conferir validade das rações", date, time.Time{}, "")
	require.NoError(t, err)

	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, PriorityMedium, tk.Priority, "prioridade vazia assume media")
	assert.Equal(t, StatusPending, tk.Status)
}

func TestNewTask_Validation(t *testing.T) {
	date := time.Now()

	_, err := NewTask("", "Organizar estoque", "", date, time.Time{}, PriorityLow)
	assert.ErrorIs(t, err, ErrEmptyStaffID)

	_, err = NewTask("f1", "", "", date, time.Time{}, PriorityLow)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewTask("f1", "Organizar estoque", "", date, time.Time{}, "urgentissima")
	assert.ErrorIs(t, err, ErrInvalidPrio)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusInProgress))
	assert.True(t, IsValidStatus(StatusDone))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("arquivada"))
}
