package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect_backend/internal/commands"
	"campusconnect_backend/internal/dto"
	"campusconnect_backend/internal/imageprocessor"
	"campusconnect_backend/internal/middleware"
	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/projector"
	"campusconnect_backend/internal/session"
	"campusconnect_backend/pkg/apperrors"
)

// ProfileHandler serves student and company profile screens, edits and
// image uploads.
type ProfileHandler struct {
	*BaseHandler
	sessions  *session.Manager
	commands  *commands.Service
	projector *projector.Projector
	processor *imageprocessor.Processor
}

func NewProfileHandler(base *BaseHandler, sessions *session.Manager, cmds *commands.Service,
	proj *projector.Projector, proc *imageprocessor.Processor) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: base,
		sessions:    sessions,
		commands:    cmds,
		projector:   proj,
		processor:   proc,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	student := middleware.RequireRole(h.sessions, models.RoleStudent)
	company := middleware.RequireRole(h.sessions, models.RoleCompany)

	students := rg.Group("/students/me", student)
	{
		students.GET("", h.GetStudentProfile)
		students.PUT("", h.UpdateStudentProfile)
		students.POST("/image", h.UploadStudentImage)
		students.GET("/applications", h.GetStudentApplications)
	}

	companies := rg.Group("/companies/me", company)
	{
		companies.GET("", h.GetCompanyProfile)
		companies.PUT("", h.UpdateCompanyProfile)
		companies.POST("/logo", h.UploadCompanyLogo)
	}
}

func (h *ProfileHandler) GetStudentProfile(c *gin.Context) {
	view, err := h.projector.StudentProfile(middleware.IdentityID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) UpdateStudentProfile(c *gin.Context) {
	var req dto.UpdateStudentProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.commands.UpdateStudentProfile(middleware.IdentityID(c), commands.StudentProfileInput{
		Name:     req.Name,
		Semester: req.Semester,
		CGPA:     req.CGPA,
		Skills:   req.Skills,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (h *ProfileHandler) GetStudentApplications(c *gin.Context) {
	entries := h.projector.StudentApplications(middleware.IdentityID(c))
	c.JSON(http.StatusOK, gin.H{"applications": entries})
}

func (h *ProfileHandler) UploadStudentImage(c *gin.Context) {
	h.handleUpload(c, h.commands.AttachStudentImage)
}

func (h *ProfileHandler) GetCompanyProfile(c *gin.Context) {
	view, err := h.projector.CompanyProfile(middleware.IdentityID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) UpdateCompanyProfile(c *gin.Context) {
	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.commands.UpdateCompanyProfile(middleware.IdentityID(c), commands.CompanyProfileInput{
		Name:     req.Name,
		Industry: req.Industry,
		Size:     req.Size,
		About:    req.About,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (h *ProfileHandler) UploadCompanyLogo(c *gin.Context) {
	h.handleUpload(c, h.commands.AttachCompanyLogo)
}

// handleUpload reads the multipart "image" file, runs it through the image
// pipeline and applies the attach mutation from the delivery callback. The
// response waits for delivery so the client sees the final outcome.
func (h *ProfileHandler) handleUpload(c *gin.Context, attach func(id string, data []byte) error) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewValidationError("An 'image' file field is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	identityID := middleware.IdentityID(c)

	done := make(chan error, 1)
	h.processor.Process(data, func(res imageprocessor.Result, procErr error) {
		if procErr != nil {
			done <- procErr
			return
		}
		done <- attach(identityID, res.Data)
	})

	if err := <-done; err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded"})
}
