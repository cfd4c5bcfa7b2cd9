package models

import "time"

// Post is a feed entry authored by a student. StudentName and ProfileImage
// are point-in-time snapshots taken at creation; later profile edits do not
// re-sync them.
type Post struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName"`
	ProfileImage []byte    `json:"profileImage,omitempty"`
	Content      string    `json:"content"`
	Image        []byte    `json:"image,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
}

func (p *Post) EntityID() string { return p.ID }
