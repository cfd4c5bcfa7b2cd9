package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect_backend/internal/dto"
	"campusconnect_backend/internal/middleware"
	"campusconnect_backend/internal/models"
	"campusconnect_backend/internal/session"
	"campusconnect_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	sessions *session.Manager
}

func NewAuthHandler(base *BaseHandler, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{BaseHandler: base, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/student/login", h.StudentLogin)
		auth.POST("/student/signup", h.StudentSignup)
		auth.POST("/company/login", h.CompanyLogin)
		auth.POST("/company/signup", h.CompanySignup)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.RequireSession(h.sessions), h.Me)
	}
}

func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	student, err := h.sessions.LoginStudent(req.Email, req.Password)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Role:       string(models.RoleStudent),
		IdentityID: student.ID,
		Name:       student.Name,
	})
}

func (h *AuthHandler) StudentSignup(c *gin.Context) {
	var req dto.StudentSignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	student, err := h.sessions.SignupStudent(session.StudentSignup{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Semester: req.Semester,
		CGPA:     req.CGPA,
		Skills:   req.Skills,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Role:       string(models.RoleStudent),
		IdentityID: student.ID,
		Name:       student.Name,
	})
}

func (h *AuthHandler) CompanyLogin(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.sessions.LoginCompany(req.Email, req.Password)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Role:       string(models.RoleCompany),
		IdentityID: company.ID,
		Name:       company.Name,
	})
}

func (h *AuthHandler) CompanySignup(c *gin.Context) {
	var req dto.CompanySignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.sessions.SignupCompany(session.CompanySignup{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Industry: req.Industry,
		Size:     req.Size,
		About:    req.About,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Role:       string(models.RoleCompany),
		IdentityID: company.ID,
		Name:       company.Name,
	})
}

// Logout always succeeds, even when already anonymous.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	role, id, _ := h.sessions.Current()
	c.JSON(http.StatusOK, gin.H{"role": role, "identityId": id})
}
