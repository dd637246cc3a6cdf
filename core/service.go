package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"qurocare.com/alms/model"
	"qurocare.com/alms/store"
)

// Notifier is the one-way fire-and-forget notification channel. Send
// failures are surfaced as warnings by callers, never propagated.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

var (
	ErrAlreadyClockedIn = errors.New("already clocked in, clock out first")
	ErrNotClockedIn     = errors.New("no open clock-in for today")
	ErrDayComplete      = errors.New("attendance already recorded for today")
)

// Service owns the attendance decision logic. The store and notifier are
// injected; wall-clock time comes through Now so tests can pin it.
type Service struct {
	Store      *store.Store
	Notifier   Notifier
	AdminEmail string
	Now        func() time.Time
}

func NewService(st *store.Store, notifier Notifier, adminEmail string) *Service {
	return &Service{
		Store:      st,
		Notifier:   notifier,
		AdminEmail: adminEmail,
		Now:        time.Now,
	}
}

// DaySummary is the derived state of one employee for the current day.
type DaySummary struct {
	State      State                   `json:"state"`
	NextAction string                  `json:"next_action,omitempty"`
	Record     *model.AttendanceRecord `json:"record,omitempty"`
}

// Today derives the employee's current phase from the attendance table.
func (s *Service) Today(emp model.Employee) DaySummary {
	today := TodayRecords(s.Store.Attendance, emp.Name, s.Now())
	state := DeriveState(today)

	summary := DaySummary{State: state, NextAction: state.NextAction()}
	if len(today) > 0 {
		last := today[len(today)-1]
		summary.Record = &last
	}
	return summary
}

type ClockInResult struct {
	ClockIn string `json:"clock_in"`
	Status  string `json:"status"`
}

// ClockIn opens a new attendance record for today. Legal only from
// NOT_STARTED; an open record must be closed first and a closed day stays
// closed (no multi-session support).
func (s *Service) ClockIn(emp model.Employee) (ClockInResult, error) {
	switch DeriveState(TodayRecords(s.Store.Attendance, emp.Name, s.Now())) {
	case StateOpen:
		return ClockInResult{}, ErrAlreadyClockedIn
	case StateClosed:
		return ClockInResult{}, ErrDayComplete
	}

	now := s.Now()
	clockIn := now.Format(TimeLayout)
	status, err := ClockInStatus(clockIn, emp.ActualClockIn)
	if err != nil {
		return ClockInResult{}, err
	}

	s.Store.Attendance = append(s.Store.Attendance, model.AttendanceRecord{
		ID:           s.Store.NextAttendanceID(),
		Name:         emp.Name,
		Email:        emp.Email,
		RegisteredID: emp.RegisteredID,
		ClockIn:      now.Format(ClockInLayout),
		Status:       status,
	})
	if err := s.Store.SaveAttendance(); err != nil {
		return ClockInResult{}, err
	}

	return ClockInResult{ClockIn: clockIn, Status: status}, nil
}

type ClockOutResult struct {
	ClockOut string  `json:"clock_out"`
	Duration float64 `json:"duration"`
}

// ClockOut closes today's open record. Legal only from OPEN.
func (s *Service) ClockOut(emp model.Employee) (ClockOutResult, error) {
	now := s.Now()
	today := TodayRecords(s.Store.Attendance, emp.Name, now)
	if DeriveState(today) != StateOpen {
		return ClockOutResult{}, ErrNotClockedIn
	}
	open := today[len(today)-1]

	clockOut := now.Format(TimeLayout)
	duration, err := WorkedHours(open.ClockInTimeOfDay(), clockOut)
	if err != nil {
		return ClockOutResult{}, err
	}

	// mutate the table row in place, located by id
	for i := range s.Store.Attendance {
		if s.Store.Attendance[i].ID == open.ID {
			s.Store.Attendance[i].ClockOut = clockOut
			s.Store.Attendance[i].Duration = &duration
			break
		}
	}
	if err := s.Store.SaveAttendance(); err != nil {
		return ClockOutResult{}, err
	}

	return ClockOutResult{ClockOut: clockOut, Duration: duration}, nil
}

type LeaveResult struct {
	Leave model.LeaveRequest
	// NotifyErr is set when the admin notification failed; the leave row
	// is persisted regardless.
	NotifyErr error
}

// SubmitLeave appends a leave request and notifies the administrator.
// There is no date-range validation or overlap check; a submitted form is
// always accepted.
func (s *Service) SubmitLeave(ctx context.Context, emp model.Employee, startDate, endDate, reason string) (LeaveResult, error) {
	leave := model.LeaveRequest{
		ID:           s.Store.NextLeaveID(),
		Name:         emp.Name,
		Email:        emp.Email,
		RegisteredID: emp.RegisteredID,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       reason,
	}
	s.Store.Leaves = append(s.Store.Leaves, leave)
	if err := s.Store.SaveLeaves(); err != nil {
		return LeaveResult{}, err
	}

	body := fmt.Sprintf(
		"Employee Name: %s\nEmail: %s\nStart Date: %s\nEnd Date: %s\nReason: %s\n\nKindly respond to this leave application.",
		emp.Name, emp.Email, startDate, endDate, reason,
	)
	notifyErr := s.Notifier.Send(ctx, s.AdminEmail, "New Leave Request", body)

	return LeaveResult{Leave: leave, NotifyErr: notifyErr}, nil
}

// SendOverdueReminders sweeps every employee and emails the ones whose
// open clock-in is older than the reminder threshold. It runs at the start
// of each interaction cycle, not on a timer, and does not de-duplicate:
// a still-overdue record is reminded again on the next sweep.
func (s *Service) SendOverdueReminders(ctx context.Context) ([]string, error) {
	now := s.Now()

	var reminded []string
	for _, emp := range s.Store.Employees {
		today := TodayRecords(s.Store.Attendance, emp.Name, now)
		if len(today) == 0 {
			continue
		}
		last := today[len(today)-1]
		due, err := ReminderDue(last, now)
		if err != nil {
			return reminded, err
		}
		if !due {
			continue
		}

		body := fmt.Sprintf(
			"Dear %s,\n\nThis is a reminder that you haven't clocked out yet.\nClock-In Time: %s\nCurrent Time: %s\n\nPlease make sure to clock out as soon as possible.\n\nThank you!",
			emp.Name, last.ClockInTimeOfDay(), now.Format(TimeLayout),
		)
		if err := s.Notifier.Send(ctx, emp.Email, "Reminder: Clock-Out Pending", body); err != nil {
			log.Printf("reminder to %s failed: %v", emp.Email, err)
			continue
		}
		reminded = append(reminded, emp.Name)
	}
	return reminded, nil
}

// Authenticate does a linear scan for a matching (name, passkey) pair.
func (s *Service) Authenticate(name, passkey string) *model.Employee {
	for i := range s.Store.Employees {
		if s.Store.Employees[i].Name == name && s.Store.Employees[i].Passkey == passkey {
			return &s.Store.Employees[i]
		}
	}
	return nil
}
