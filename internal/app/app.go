package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"campusconnect_backend/internal/commands"
	"campusconnect_backend/internal/config"
	"campusconnect_backend/internal/handlers"
	"campusconnect_backend/internal/imageprocessor"
	"campusconnect_backend/internal/logger"
	"campusconnect_backend/internal/middleware"
	"campusconnect_backend/internal/projector"
	"campusconnect_backend/internal/routes"
	"campusconnect_backend/internal/session"
	"campusconnect_backend/internal/store"
	"campusconnect_backend/internal/validator"
	"campusconnect_backend/ws"
)

// Run starts the server: config, logger, store (optionally seeded with the
// demo dataset), router.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	st := store.New()
	if cfg.Seed {
		if err := store.Seed(st); err != nil {
			logger.Fatal("Failed to seed demo data", "error", err)
		}
		logger.Info("Demo dataset loaded",
			"students", st.Students.Len(),
			"companies", st.Companies.Len(),
			"posts", st.Posts.Len(),
			"jobs", st.Jobs.Len(),
		)
	}

	wsManager := ws.NewManager()
	go wsManager.Run()
	defer wsManager.Stop()

	router := SetupRouter(cfg, st, wsManager)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine against the given store. The
// caller owns the websocket manager's Run loop, so tests can stop it when
// their router goes away.
func SetupRouter(cfg *config.Config, st *store.Store, wsManager *ws.Manager) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	v := validator.New()
	sessions := session.NewManager(st)
	cmds := commands.NewService(st)
	proj := projector.New(st)
	proc := imageprocessor.New(cfg.Upload.MaxSize, cfg.Upload.MaxWidth, cfg.Upload.ImageQuality)

	st.Subscribe(wsManager.Notify)

	appHandlers := handlers.NewAppHandlers(v, sessions, cmds, proj, proc)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	routes.RegisterRoutes(router, appHandlers, ws.NewHandler(wsManager), sessions)

	return router
}
