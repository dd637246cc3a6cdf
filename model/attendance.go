package model

const (
	StatusFullDay = "Full Day"
	StatusHalfDay = "Half Day"
)

// AttendanceRecord is one row of attendance.csv, created on clock-in and
// closed in place on clock-out. Rows are never deleted.
//
// ClockIn is "2006-01-02 15:04" so records can be scoped to a calendar day
// by prefix. ClockOut is "15:04" and empty while the record is open.
type AttendanceRecord struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	RegisteredID string   `json:"registered_id"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     string   `json:"clock_out,omitempty"`
	Duration     *float64 `json:"duration,omitempty"`
	Status       string   `json:"status"`
}

// Open reports whether the record has not been clocked out yet.
func (r AttendanceRecord) Open() bool {
	return r.ClockOut == ""
}

// ClockInTimeOfDay returns the "15:04" part of ClockIn.
func (r AttendanceRecord) ClockInTimeOfDay() string {
	if len(r.ClockIn) > 11 {
		return r.ClockIn[11:]
	}
	return r.ClockIn
}
