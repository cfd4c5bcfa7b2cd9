package models

import "time"

// Application links a student to a job. At most one application may exist
// per (StudentID, JobID) pair; the store commands enforce this.
type Application struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"studentId"`
	JobID       string            `json:"jobId"`
	CompanyID   string            `json:"companyId"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"appliedDate"`
}

func (a *Application) EntityID() string { return a.ID }
