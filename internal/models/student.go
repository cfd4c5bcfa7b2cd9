package models

// Student is a registered student account. ProfileImage holds the processed
// image bytes, nil until an upload succeeds.
type Student struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"-"`
	ProfileImage []byte   `json:"profileImage,omitempty"`
	Semester     int      `json:"semester"`
	CGPA         float64  `json:"cgpa"`
	Skills       []string `json:"skills"`
	Connections  int      `json:"connections"`
	PostsCount   int      `json:"postsCount"`
	ProfileViews int      `json:"profileViews"`
}

func (s *Student) EntityID() string { return s.ID }
