package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type StudentSignupRequest struct {
	Name     string   `json:"name" binding:"required" validate:"required"`
	Email    string   `json:"email" binding:"required" validate:"required,email"`
	Password string   `json:"password" binding:"required" validate:"required,min=6"`
	Semester int      `json:"semester" validate:"gte=1,lte=8"`
	CGPA     float64  `json:"cgpa" validate:"gte=0,lte=10"`
	Skills   []string `json:"skills"`
}

type CompanySignupRequest struct {
	Name     string `json:"name" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
	About    string `json:"about"`
}

type SessionResponse struct {
	Role       string `json:"role"`
	IdentityID string `json:"identityId"`
	Name       string `json:"name"`
}
