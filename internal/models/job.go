package models

import "time"

// Job is a posting owned by a company. CompanyName is a creation-time
// snapshot. Applications is kept in sync by the apply/delete commands.
type Job struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	CompanyName  string    `json:"companyName"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Type         string    `json:"type"`
	Skills       []string  `json:"skills"`
	PostedDate   time.Time `json:"postedDate"`
	Applications int       `json:"applications"`
}

func (j *Job) EntityID() string { return j.ID }
