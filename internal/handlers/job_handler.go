package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect_backend/internal/commands"
	"campusconnect_backend/internal/dto"
	"campusconnect_backend/internal/middleware"
	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/projector"
	"campusconnect_backend/internal/session"
	"campusconnect_backend/pkg/apperrors"
)

// JobHandler serves job listings for both roles: recommendations and the
// company directory for students, posting management for companies.
type JobHandler struct {
	*BaseHandler
	sessions  *session.Manager
	commands  *commands.Service
	projector *projector.Projector
}

func NewJobHandler(base *BaseHandler, sessions *session.Manager, cmds *commands.Service,
	proj *projector.Projector) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		sessions:    sessions,
		commands:    cmds,
		projector:   proj,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	student := middleware.RequireRole(h.sessions, models.RoleStudent)
	company := middleware.RequireRole(h.sessions, models.RoleCompany)

	rg.GET("/jobs/recommendations", student, h.GetRecommendations)
	rg.POST("/jobs/:id/apply", student, h.Apply)
	rg.GET("/companies", student, h.ListCompanies)

	rg.POST("/jobs", company, h.PostJob)
	rg.DELETE("/jobs/:id", company, h.DeleteJob)
	rg.GET("/companies/me/jobs", company, h.GetCompanyJobs)
}

func (h *JobHandler) GetRecommendations(c *gin.Context) {
	recs, err := h.projector.JobRecommendations(middleware.IdentityID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": recs})
}

func (h *JobHandler) Apply(c *gin.Context) {
	app, err := h.commands.ApplyForJob(middleware.IdentityID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *JobHandler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": h.projector.Companies()})
}

func (h *JobHandler) PostJob(c *gin.Context) {
	var req dto.PostJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.commands.PostJob(middleware.IdentityID(c), commands.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Type:        req.Type,
		Skills:      req.Skills,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.commands.DeleteJob(c.Param("id"), middleware.IdentityID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) GetCompanyJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": h.projector.CompanyJobs(middleware.IdentityID(c))})
}
