package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	s, err := time.Parse("15:04", start)
	require.NoError(t, err)
	e, err := time.Parse("15:04", end)
	require.NoError(t, err)
	return TimeRange{Start: s, End: e}
}

func TestTimeRange_Overlaps(t *testing.T) {
	base := timeRange(t, "14:00", "15:00")

	assert.True(t, base.Overlaps(timeRange(t, "14:30", "15:30")))
	assert.True(t, base.Overlaps(timeRange(t, "13:30", "14:30")))
	assert.True(t, base.Overlaps(timeRange(t, "14:10", "14:50")))
	assert.True(t, base.Overlaps(timeRange(t, "13:00", "16:00")))
}

func TestTimeRange_Overlaps_TouchingEdges(t *testing.T) {
	base := timeRange(t, "14:00", "15:00")

	// Intervalos semiabertos: encostar no extremo não é sobreposição
	assert.False(t, base.Overlaps(timeRange(t, "15:00", "16:00")))
	assert.False(t, base.Overlaps(timeRange(t, "13:00", "14:00")))
}

func TestTimeRange_Overlaps_Disjoint(t *testing.T) {
	base := timeRange(t, "14:00", "15:00")

	assert.False(t, base.Overlaps(timeRange(t, "16:00", "17:00")))
	assert.False(t, base.Overlaps(timeRange(t, "10:00", "11:00")))
}

func TestTimeRange_Valid(t *testing.T) {
	assert.True(t, timeRange(t, "09:00", "10:00").Valid())
	assert.False(t, timeRange(t, "10:00", "09:00").Valid())
	assert.False(t, timeRange(t, "09:00", "09:00").Valid())
}

func TestNewAppointment_DefaultStatus(t *testing.T) {
	date := time.Now().AddDate(0, 0, 1)
	a, err := NewAppointment("c1", "p1", "s1", nil, date, date, date.Add(time.Hour), "", "")
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, a.Status)
	assert.NotEmpty(t, a.ID)
}

func TestNewAppointment_RequiredFields(t *testing.T) {
	date := time.Now().AddDate(0, 0, 1)

	_, err := NewAppointment("", "p1", "s1", nil, date, date, date.Add(time.Hour), "", "")
	assert.ErrorIs(t, err, ErrEmptyClientID)

	_, err = NewAppointment("c1", "", "s1", nil, date, date, date.Add(time.Hour), "", "")
	assert.ErrorIs(t, err, ErrEmptyPetID)

	_, err = NewAppointment("c1", "p1", "", nil, date, date, date.Add(time.Hour), "", "")
	assert.ErrorIs(t, err, ErrEmptyServiceID)
}

func TestNewAppointment_InvalidStatus(t *testing.T) {
	date := time.Now().AddDate(0, 0, 1)
	_, err := NewAppointment("c1", "p1", "s1", nil, date, date, date.Add(time.Hour), "inexistente", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestValidateSchedule_PastDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	a := &Appointment{
		Date:      yesterday,
		StartTime: yesterday,
		EndTime:   yesterday.Add(time.Hour),
	}
	assert.ErrorIs(t, a.ValidateSchedule(now), ErrPastDate)
}

func TestValidateSchedule_TodayAllowed(t *testing.T) {
	// Agendar para hoje é permitido mesmo depois do horário já ter passado,
	// porque a comparação é na granularidade de dia
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	a := &Appointment{
		Date:      today,
		StartTime: today.Add(9 * time.Hour),
		EndTime:   today.Add(10 * time.Hour),
	}
	assert.NoError(t, a.ValidateSchedule(now))
}

func TestValidateSchedule_InvalidRange(t *testing.T) {
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)

	a := &Appointment{
		Date:      tomorrow,
		StartTime: tomorrow.Add(2 * time.Hour),
		EndTime:   tomorrow.Add(time.Hour),
	}
	assert.ErrorIs(t, a.ValidateSchedule(now), ErrInvalidRange)
}

func TestIsActiveStatus(t *testing.T) {
	assert.True(t, IsActiveStatus(StatusScheduled))
	assert.True(t, IsActiveStatus(StatusConfirmed))
	assert.True(t, IsActiveStatus(StatusInProgress))
	assert.False(t, IsActiveStatus(StatusCompleted))
	assert.False(t, IsActiveStatus(StatusCancelled))
}
