package model

// Employee is one row of employees.csv. The table is maintained outside
// this system and is read-only here.
type Employee struct {
	Name         string `json:"name"`
	Passkey      string `json:"-"`
	Email        string `json:"email"`
	RegisteredID string `json:"registered_id"`
	// ActualClockIn is the expected daily start time, "HH:MM".
	ActualClockIn string `json:"actual_clock_in"`
}
