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

// ApplicationHandler serves the company's candidates and applications
// screens and the status-change action.
type ApplicationHandler struct {
	*BaseHandler
	sessions  *session.Manager
	commands  *commands.Service
	projector *projector.Projector
}

func NewApplicationHandler(base *BaseHandler, sessions *session.Manager, cmds *commands.Service,
	proj *projector.Projector) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		sessions:    sessions,
		commands:    cmds,
		projector:   proj,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	company := middleware.RequireRole(h.sessions, models.RoleCompany)

	rg.GET("/companies/me/candidates", company, h.GetCandidates)
	rg.GET("/companies/me/applications", company, h.GetApplications)
	rg.PATCH("/applications/:id/status", company, h.UpdateStatus)
}

func (h *ApplicationHandler) GetCandidates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"candidates": h.projector.Candidates(middleware.IdentityID(c))})
}

// GetApplications accepts ?status=pending|accepted|rejected; no filter
// returns everything.
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	filter := models.ApplicationStatus(c.Query("status"))
	if filter != "" && !filter.Valid() {
		apperrors.HandleError(c, apperrors.NewValidationError("Unknown status filter"))
		return
	}
	entries := h.projector.Applications(middleware.IdentityID(c), filter)
	c.JSON(http.StatusOK, gin.H{"applications": entries})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.commands.UpdateApplicationStatus(
		c.Param("id"),
		models.ApplicationStatus(req.Status),
		middleware.IdentityID(c),
	)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application " + req.Status})
}
