package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qurocare.com/alms/model"
	"qurocare.com/alms/utils"
)

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name     string
		today    []model.AttendanceRecord
		expected State
	}{
		{
			name:     "No records",
			today:    nil,
			expected: StateNotStarted,
		},
		{
			name: "Open record",
			today: []model.AttendanceRecord{
				{ID: 1, ClockIn: "2026-03-05 09:00"},
			},
			expected: StateOpen,
		},
		{
			name: "Closed record",
			today: []model.AttendanceRecord{
				{ID: 1, ClockIn: "2026-03-05 09:00", ClockOut: "17:30", Duration: utils.Ptr(8.5)},
			},
			expected: StateClosed,
		},
		{
			name: "Latest record wins",
			today: []model.AttendanceRecord{
				{ID: 1, ClockIn: "2026-03-05 08:00", ClockOut: "12:00", Duration: utils.Ptr(4.0)},
				{ID: 2, ClockIn: "2026-03-05 13:00"},
			},
			expected: StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveState(tt.today))
		})
	}
}

func TestStateNextAction(t *testing.T) {
	assert.Equal(t, "clock_in", StateNotStarted.NextAction())
	assert.Equal(t, "clock_out", StateOpen.NextAction())
	assert.Equal(t, "", StateClosed.NextAction())
}

func TestClockInStatus(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		expected string
	}{
		{
			name:     "On time",
			clockIn:  "09:00",
			expected: model.StatusFullDay,
		},
		{
			name:     "Early",
			clockIn:  "08:40",
			expected: model.StatusFullDay,
		},
		{
			name:     "Exactly on threshold (10m)",
			clockIn:  "09:10",
			expected: model.StatusFullDay,
		},
		{
			name:     "Just past threshold (11m)",
			clockIn:  "09:11",
			expected: model.StatusHalfDay,
		},
		{
			name:     "Very late",
			clockIn:  "13:00",
			expected: model.StatusHalfDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ClockInStatus(tt.clockIn, "09:00")
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}

	t.Run("Invalid time", func(t *testing.T) {
		_, err := ClockInStatus("nine", "09:00")
		assert.Error(t, err)
	})
}

func TestWorkedHours(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		expected float64
	}{
		{
			name:     "Standard day",
			clockIn:  "09:00",
			clockOut: "17:30",
			expected: 8.5,
		},
		{
			name:     "Short session",
			clockIn:  "09:00",
			clockOut: "09:15",
			expected: 0.25,
		},
		{
			name:     "Zero duration",
			clockIn:  "09:00",
			clockOut: "09:00",
			expected: 0,
		},
		{
			name:     "Past midnight wraps modulo 24h",
			clockIn:  "23:00",
			clockOut: "01:00",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := WorkedHours(tt.clockIn, tt.clockOut)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, hours, 1e-9)
		})
	}
}

func TestTodayRecords(t *testing.T) {
	now := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)
	attendance := []model.AttendanceRecord{
		{ID: 1, Name: "Asha Nair", ClockIn: "2026-03-04 09:00", ClockOut: "17:00"},
		{ID: 2, Name: "Asha Nair", ClockIn: "2026-03-05 09:05"},
		{ID: 3, Name: "Ravi Menon", ClockIn: "2026-03-05 09:30"},
	}

	today := TodayRecords(attendance, "Asha Nair", now)
	assert.Len(t, today, 1)
	assert.Equal(t, 2, today[0].ID)

	assert.Empty(t, TodayRecords(attendance, "Priya Das", now))
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2026, 3, 5, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		record   model.AttendanceRecord
		expected bool
	}{
		{
			name:     "Open and overdue",
			record:   model.AttendanceRecord{ClockIn: "2026-03-05 09:00"},
			expected: true,
		},
		{
			name:     "Open, exactly on threshold",
			record:   model.AttendanceRecord{ClockIn: "2026-03-05 09:30"},
			expected: false,
		},
		{
			name:     "Open but recent",
			record:   model.AttendanceRecord{ClockIn: "2026-03-05 12:00"},
			expected: false,
		},
		{
			name:     "Closed",
			record:   model.AttendanceRecord{ClockIn: "2026-03-05 09:00", ClockOut: "17:00"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := ReminderDue(tt.record, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, due)
		})
	}

	t.Run("Malformed clock_in is an error", func(t *testing.T) {
		_, err := ReminderDue(model.AttendanceRecord{ClockIn: "09:00"}, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "09:00")
	})
}

func TestParseTimeOnDate(t *testing.T) {
	base := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	got, err := ParseTimeOnDate(base, "09:15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 5, 9, 15, 0, 0, time.UTC), got)

	_, err = ParseTimeOnDate(base, "not-a-time")
	assert.Error(t, err)
}
