package handlers

import (
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

// FeedHandler serves the home feed and post mutations.
type FeedHandler struct {
	*BaseHandler
	sessions  *session.Manager
	commands  *commands.Service
	projector *projector.Projector
	processor *imageprocessor.Processor
}

func NewFeedHandler(base *BaseHandler, sessions *session.Manager, cmds *commands.Service,
	proj *projector.Projector, proc *imageprocessor.Processor) *FeedHandler {
	return &FeedHandler{
		BaseHandler: base,
		sessions:    sessions,
		commands:    cmds,
		projector:   proj,
		processor:   proc,
	}
}

func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	student := middleware.RequireRole(h.sessions, models.RoleStudent)

	rg.GET("/feed", student, h.GetFeed)
	posts := rg.Group("/posts", student)
	{
		posts.POST("", h.CreatePost)
		posts.POST("/:id/like", h.LikePost)
		posts.DELETE("/:id", h.DeletePost)
	}
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	items := h.projector.Feed(middleware.IdentityID(c))
	c.JSON(http.StatusOK, gin.H{"posts": items})
}

func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	studentID := middleware.IdentityID(c)

	var image []byte
	if len(req.Image) > 0 {
		done := make(chan struct{})
		var procErr error
		h.processor.Process(req.Image, func(res imageprocessor.Result, err error) {
			if err == nil {
				image = res.Data
			}
			procErr = err
			close(done)
		})
		<-done
		if procErr != nil {
			apperrors.HandleError(c, procErr)
			return
		}
	}

	post, err := h.commands.CreatePost(studentID, req.Content, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *FeedHandler) LikePost(c *gin.Context) {
	likes, err := h.commands.LikePost(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func (h *FeedHandler) DeletePost(c *gin.Context) {
	if err := h.commands.DeletePost(c.Param("id"), middleware.IdentityID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
