package dto

type CreatePostRequest struct {
	Content string `json:"content" binding:"required" validate:"required"`
	// Image is the raw upload, base64 in JSON. It goes through the image
	// pipeline before the post is created.
	Image []byte `json:"image,omitempty"`
}

type UpdateStudentProfileRequest struct {
	Name     *string  `json:"name,omitempty"`
	Semester *int     `json:"semester,omitempty" validate:"omitempty,gte=1,lte=8"`
	CGPA     *float64 `json:"cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	Skills   []string `json:"skills,omitempty"`
}

type UpdateCompanyProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Industry *string `json:"industry,omitempty"`
	Size     *string `json:"size,omitempty"`
	About    *string `json:"about,omitempty"`
}
