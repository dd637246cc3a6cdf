package model

// LeaveRequest is one row of leaves.csv. Requests are append-only;
// approval happens out of band via the admin notification.
type LeaveRequest struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RegisteredID string `json:"registered_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}
