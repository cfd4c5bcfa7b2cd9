package handlers

import (
	"campusconnect_backend/internal/commands"
	"campusconnect_backend/internal/imageprocessor"
	"campusconnect_backend/internal/projector"
	"campusconnect_backend/internal/session"
	"campusconnect_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Feed        *FeedHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Profile     *ProfileHandler
}

func NewAppHandlers(v *validator.Validator, sessions *session.Manager, cmds *commands.Service,
	proj *projector.Projector, proc *imageprocessor.Processor) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:        NewAuthHandler(base, sessions),
		Feed:        NewFeedHandler(base, sessions, cmds, proj, proc),
		Job:         NewJobHandler(base, sessions, cmds, proj),
		Application: NewApplicationHandler(base, sessions, cmds, proj),
		Profile:     NewProfileHandler(base, sessions, cmds, proj, proc),
	}
}
