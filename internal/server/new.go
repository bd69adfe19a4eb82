package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinscribe/clinscribe/internal/config"
	"github.com/clinscribe/clinscribe/internal/logger"
	"github.com/clinscribe/clinscribe/internal/pipeline"
)

type implServer struct {
	cfg        *config.Config
	pipeline   pipeline.Pipeline
	store      *Store
	logger     logger.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New creates a new Server instance
func New(cfg *config.Config, p pipeline.Pipeline, log logger.Logger) Server {
	gin.SetMode(gin.ReleaseMode)

	s := &implServer{
		cfg:      cfg,
		pipeline: p,
		store:    NewStore(cfg.Server.StoreCapacity),
		logger:   log,
		engine:   gin.New(),
	}
	s.routes()

	s.httpServer = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: s.engine,
	}
	return s
}

func (s *implServer) routes() {
	s.engine.Use(s.recovery(), requestID(), s.requestLogger())

	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api/v1")
	{
		api.POST("/consultations", s.bodyLimit(), s.handleCreateConsultation)
		api.GET("/consultations/:id", s.handleGetConsultation)
		api.GET("/consultations/:id/export/:format", s.handleExportConsultation)
	}
}
