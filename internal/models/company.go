package models

// Company is a registered company account.
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
	About    string `json:"about"`
	Logo     []byte `json:"logo,omitempty"`
}

func (c *Company) EntityID() string { return c.ID }
