package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"qurocare.com/alms/model"
)

var (
	employeeColumns   = []string{"name", "passkey", "email", "registered_id", "actual_clock_in"}
	attendanceColumns = []string{"id", "name", "email", "registered_id", "clock_in", "clock_out", "duration", "status"}
	leaveColumns      = []string{"id", "name", "email", "registered_id", "start_date", "end_date", "reason"}
)

// header maps normalized column names to their position. Column names in
// the source files carry stray whitespace and inconsistent casing, so both
// are stripped before matching.
type header map[string]int

func newHeader(columns []string) header {
	h := make(header, len(columns))
	for i, name := range columns {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h
}

type row struct {
	header header
	values []string
}

func (r row) get(column string, line int) (string, error) {
	idx, ok := r.header[column]
	if !ok {
		return "", fmt.Errorf("row %d: missing column %q", line, column)
	}
	if idx >= len(r.values) {
		return "", fmt.Errorf("row %d: short row, no value for %q", line, column)
	}
	return strings.TrimSpace(r.values[idx]), nil
}

func (r row) getInt(column string, line int) (int, error) {
	raw, err := r.get(column, line)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid %s: %w", line, column, err)
	}
	return v, nil
}

func decodeEmployee(r row, line int) (model.Employee, error) {
	var e model.Employee
	var err error

	// passkey stays an opaque string so leading zeros survive
	for _, field := range []struct {
		column string
		dst    *string
	}{
		{"name", &e.Name},
		{"passkey", &e.Passkey},
		{"email", &e.Email},
		{"registered_id", &e.RegisteredID},
		{"actual_clock_in", &e.ActualClockIn},
	} {
		if *field.dst, err = r.get(field.column, line); err != nil {
			return e, err
		}
	}
	return e, nil
}

func decodeAttendance(r row, line int) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	var err error

	if rec.ID, err = r.getInt("id", line); err != nil {
		return rec, err
	}
	for _, field := range []struct {
		column string
		dst    *string
	}{
		{"name", &rec.Name},
		{"email", &rec.Email},
		{"registered_id", &rec.RegisteredID},
		{"clock_in", &rec.ClockIn},
		{"clock_out", &rec.ClockOut},
		{"status", &rec.Status},
	} {
		if *field.dst, err = r.get(field.column, line); err != nil {
			return rec, err
		}
	}

	raw, err := r.get("duration", line)
	if err != nil {
		return rec, err
	}
	if raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("row %d: invalid duration: %w", line, err)
		}
		rec.Duration = &d
	}
	return rec, nil
}

func decodeLeave(r row, line int) (model.LeaveRequest, error) {
	var l model.LeaveRequest
	var err error

	if l.ID, err = r.getInt("id", line); err != nil {
		return l, err
	}
	for _, field := range []struct {
		column string
		dst    *string
	}{
		{"name", &l.Name},
		{"email", &l.Email},
		{"registered_id", &l.RegisteredID},
		{"start_date", &l.StartDate},
		{"end_date", &l.EndDate},
		{"reason", &l.Reason},
	} {
		if *field.dst, err = r.get(field.column, line); err != nil {
			return l, err
		}
	}
	return l, nil
}

func encodeEmployee(e model.Employee) []string {
	return []string{e.Name, e.Passkey, e.Email, e.RegisteredID, e.ActualClockIn}
}

func encodeAttendance(r model.AttendanceRecord) []string {
	// full precision so a save+reload yields the value written; two-decimal
	// rounding is a display concern
	duration := ""
	if r.Duration != nil {
		duration = strconv.FormatFloat(*r.Duration, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(r.ID), r.Name, r.Email, r.RegisteredID,
		r.ClockIn, r.ClockOut, duration, r.Status,
	}
}

func encodeLeave(l model.LeaveRequest) []string {
	return []string{
		strconv.Itoa(l.ID), l.Name, l.Email, l.RegisteredID,
		l.StartDate, l.EndDate, l.Reason,
	}
}

func writeTable(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
