package store

import (
	"fmt"
	"os"
	"path/filepath"

	"qurocare.com/alms/model"
	"qurocare.com/alms/utils"
)

const (
	EmployeeFile   = "employees.csv"
	AttendanceFile = "attendance.csv"
	LeaveFile      = "leaves.csv"
)

// Store owns the three flat tables. Tables are loaded fully into memory
// and every mutation rewrites the backing file wholesale; there is no
// locking, so concurrent writers are last-writer-wins.
type Store struct {
	dir string

	Employees  []model.Employee
	Attendance []model.AttendanceRecord
	Leaves     []model.LeaveRequest
}

// New returns an empty store bound to dir without touching disk. Used by
// tooling that creates the files in the first place; the service uses Open.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Open loads all three tables from dir.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load re-reads every table from disk, replacing the in-memory rows.
func (s *Store) Load() error {
	employees, err := loadTable(filepath.Join(s.dir, EmployeeFile), decodeEmployee)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}

	attendance, err := loadTable(filepath.Join(s.dir, AttendanceFile), decodeAttendance)
	if err != nil {
		return fmt.Errorf("load attendance: %w", err)
	}

	leaves, err := loadTable(filepath.Join(s.dir, LeaveFile), decodeLeave)
	if err != nil {
		return fmt.Errorf("load leaves: %w", err)
	}

	s.Employees = employees
	s.Attendance = attendance
	s.Leaves = leaves
	return nil
}

// SaveAttendance rewrites attendance.csv from the in-memory table.
func (s *Store) SaveAttendance() error {
	rows := utils.Map(s.Attendance, encodeAttendance)
	if err := writeTable(filepath.Join(s.dir, AttendanceFile), attendanceColumns, rows); err != nil {
		return fmt.Errorf("save attendance: %w", err)
	}
	return nil
}

// SaveLeaves rewrites leaves.csv from the in-memory table.
func (s *Store) SaveLeaves() error {
	rows := utils.Map(s.Leaves, encodeLeave)
	if err := writeTable(filepath.Join(s.dir, LeaveFile), leaveColumns, rows); err != nil {
		return fmt.Errorf("save leaves: %w", err)
	}
	return nil
}

// SaveEmployees rewrites employees.csv. Only used by seeding tools; the
// service itself treats the employee table as read-only.
func (s *Store) SaveEmployees() error {
	rows := utils.Map(s.Employees, encodeEmployee)
	if err := writeTable(filepath.Join(s.dir, EmployeeFile), employeeColumns, rows); err != nil {
		return fmt.Errorf("save employees: %w", err)
	}
	return nil
}

// FindEmployee returns the employee with the given name, or nil.
func (s *Store) FindEmployee(name string) *model.Employee {
	return utils.Find(s.Employees, func(e model.Employee) bool {
		return e.Name == name
	})
}

// NextAttendanceID returns a strictly increasing sequential id.
func (s *Store) NextAttendanceID() int {
	max := 0
	for _, r := range s.Attendance {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// NextLeaveID returns a strictly increasing sequential id.
func (s *Store) NextLeaveID() int {
	max := 0
	for _, l := range s.Leaves {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}

func loadTable[T any](path string, decode func(row, int) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := utils.ParseCSV(f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}

	header := newHeader(rows[0])
	var out []T
	for i, raw := range rows[1:] {
		rec, err := decode(row{header: header, values: raw}, i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
