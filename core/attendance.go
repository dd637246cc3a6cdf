package core

import (
	"fmt"
	"strings"
	"time"

	"qurocare.com/alms/model"
	"qurocare.com/alms/utils"
)

const (
	// Arriving more than LateThreshold after the expected start marks the
	// day "Half Day". Exactly on the threshold still counts as "Full Day".
	LateThreshold = 10 * time.Minute

	// An open record older than ReminderThreshold is overdue for a
	// clock-out reminder.
	ReminderThreshold = 10 * time.Hour
)

const (
	TimeLayout    = "15:04"
	DateLayout    = "2006-01-02"
	ClockInLayout = "2006-01-02 15:04"
)

// State is the attendance phase of one employee on one calendar day,
// derived purely from the persisted attendance table.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateOpen       State = "OPEN"
	StateClosed     State = "CLOSED"
)

// NextAction names the single legal operation for a state.
func (s State) NextAction() string {
	switch s {
	case StateNotStarted:
		return "clock_in"
	case StateOpen:
		return "clock_out"
	default:
		return ""
	}
}

// TodayRecords returns the employee's attendance rows whose clock_in falls
// on the calendar day of now, in table order.
func TodayRecords(attendance []model.AttendanceRecord, name string, now time.Time) []model.AttendanceRecord {
	today := now.Format(DateLayout)
	return utils.Filter(attendance, func(r model.AttendanceRecord) bool {
		return r.Name == name && strings.HasPrefix(r.ClockIn, today)
	})
}

// DeriveState computes the day's phase from the today-records alone.
func DeriveState(today []model.AttendanceRecord) State {
	if len(today) == 0 {
		return StateNotStarted
	}
	if today[len(today)-1].Open() {
		return StateOpen
	}
	return StateClosed
}

// ClockInStatus grades a clock-in time against the expected start time.
// Comparison is time-of-day only and strictly greater-than: arriving at
// expected+10m exactly is still a full day.
func ClockInStatus(clockIn, expectedStart string) (string, error) {
	in, err := time.Parse(TimeLayout, clockIn)
	if err != nil {
		return "", fmt.Errorf("invalid clock-in time %q: %w", clockIn, err)
	}
	expected, err := time.Parse(TimeLayout, expectedStart)
	if err != nil {
		return "", fmt.Errorf("invalid expected start time %q: %w", expectedStart, err)
	}

	if in.After(expected.Add(LateThreshold)) {
		return model.StatusHalfDay, nil
	}
	return model.StatusFullDay, nil
}

// WorkedHours computes (clockOut - clockIn) in hours from two "HH:MM"
// time-of-day values. A clock-out past midnight wraps modulo 24 hours,
// matching the original arithmetic; dates are deliberately not involved.
func WorkedHours(clockIn, clockOut string) (float64, error) {
	in, err := time.Parse(TimeLayout, clockIn)
	if err != nil {
		return 0, fmt.Errorf("invalid clock-in time %q: %w", clockIn, err)
	}
	out, err := time.Parse(TimeLayout, clockOut)
	if err != nil {
		return 0, fmt.Errorf("invalid clock-out time %q: %w", clockOut, err)
	}

	diff := out.Sub(in)
	if diff < 0 {
		diff += 24 * time.Hour
	}
	return diff.Seconds() / 3600, nil
}

// ReminderDue reports whether the record is still open and its clock-in is
// more than ReminderThreshold in the past. A clock_in that does not parse
// is a data inconsistency and aborts the caller.
func ReminderDue(rec model.AttendanceRecord, now time.Time) (bool, error) {
	if !rec.Open() {
		return false, nil
	}
	in, err := time.ParseInLocation(ClockInLayout, rec.ClockIn, now.Location())
	if err != nil {
		return false, fmt.Errorf("invalid clock-in value %q: %w", rec.ClockIn, err)
	}
	return now.Sub(in) > ReminderThreshold, nil
}

// ParseTimeOnDate combines a base date with a time string (e.g. "09:00").
func ParseTimeOnDate(baseDate time.Time, timeStr string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		t, err = time.Parse("15:04:05", timeStr)
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), t.Hour(), t.Minute(), t.Second(), 0, baseDate.Location()), nil
}
