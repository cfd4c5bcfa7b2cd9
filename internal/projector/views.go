package projector

import "time"

// View models returned to the presentation layer. They are plain data; any
// markup or layout is the caller's business.

type FeedItem struct {
	PostID         string    `json:"postId"`
	StudentID      string    `json:"studentId"`
	StudentName    string    `json:"studentName"`
	StudentInitial string    `json:"studentInitials"`
	ProfileImage   []byte    `json:"profileImage,omitempty"`
	Content        string    `json:"content"`
	Image          []byte    `json:"image,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	PostedAgo      string    `json:"postedAgo"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	CanDelete      bool      `json:"canDelete"`
}

type JobRecommendation struct {
	JobID          string   `json:"jobId"`
	CompanyID      string   `json:"companyId"`
	CompanyName    string   `json:"companyName"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary"`
	Type           string   `json:"type"`
	Skills         []string `json:"skills"`
	PostedAgo      string   `json:"postedAgo"`
	MatchScore     int      `json:"matchScore"`
	AlreadyApplied bool     `json:"alreadyApplied"`
}

type CompanyCard struct {
	CompanyID      string `json:"companyId"`
	Name           string `json:"name"`
	Initials       string `json:"initials"`
	Industry       string `json:"industry"`
	About          string `json:"about"`
	ActiveJobCount int    `json:"activeJobCount"`
}

type Candidate struct {
	StudentID        string   `json:"studentId"`
	Name             string   `json:"name"`
	Initials         string   `json:"initials"`
	CGPA             float64  `json:"cgpa"`
	Semester         int      `json:"semester"`
	Skills           []string `json:"skills"`
	ApplicationCount int      `json:"applicationCount"`
}

type ApplicationEntry struct {
	ApplicationID   string    `json:"applicationId"`
	Status          string    `json:"status"`
	AppliedDate     time.Time `json:"appliedDate"`
	StudentID       string    `json:"studentId"`
	StudentName     string    `json:"studentName"`
	StudentInitials string    `json:"studentInitials"`
	CGPA            float64   `json:"cgpa"`
	Semester        int       `json:"semester"`
	Skills          []string  `json:"skills"`
	JobID           string    `json:"jobId"`
	JobTitle        string    `json:"jobTitle"`
}

type StudentApplicationEntry struct {
	ApplicationID string `json:"applicationId"`
	JobTitle      string `json:"jobTitle"`
	CompanyName   string `json:"companyName"`
	Status        string `json:"status"`
}

type CompanyJobItem struct {
	JobID        string   `json:"jobId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type"`
	Skills       []string `json:"skills"`
	PostedAgo    string   `json:"postedAgo"`
	Applications int      `json:"applications"`
}

type StudentProfileView struct {
	StudentID    string   `json:"studentId"`
	Name         string   `json:"name"`
	Initials     string   `json:"initials"`
	Email        string   `json:"email"`
	ProfileImage []byte   `json:"profileImage,omitempty"`
	Semester     int      `json:"semester"`
	CGPA         float64  `json:"cgpa"`
	Skills       []string `json:"skills"`
	Connections  int      `json:"connections"`
	PostsCount   int      `json:"postsCount"`
	ProfileViews int      `json:"profileViews"`
}

type CompanyProfileView struct {
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
	Initials  string `json:"initials"`
	Email     string `json:"email"`
	Industry  string `json:"industry"`
	Size      string `json:"size"`
	About     string `json:"about"`
	Logo      []byte `json:"logo,omitempty"`
}
