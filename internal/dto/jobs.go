package dto

type PostJobRequest struct {
	Title       string   `json:"title" binding:"required" validate:"required"`
	Description string   `json:"description" binding:"required" validate:"required"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Type        string   `json:"type"`
	Skills      []string `json:"skills"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=accepted rejected"`
}
