package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/config"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine
	app    *app.App
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, a *app.App) (*Server, error) {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	logger.Debug("Configured trusted proxies", "proxies", cfg.TrustedProxies)

	server := &Server{
		config: cfg,
		logger: logger,
		router: router,
		app:    a,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server, nil
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, s *Server) error {
	srv := &http.Server{
		Addr:              ":" + s.config.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "port", s.config.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	s.logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1", requestLogger(s.logger))
	{
		api.GET("/workflow", s.handleWorkflow)
		api.POST("/workflow/navigate", s.handleNavigate)
		api.GET("/events", s.handleEvents)

		api.GET("/capture", s.handleCaptureState)
		api.POST("/capture/start", s.handleCaptureStart)
		api.POST("/capture/pause", s.handleCapturePause)
		api.POST("/capture/resume", s.handleCaptureResume)
		api.POST("/capture/stop", s.handleCaptureStop)
		api.PUT("/capture/ambient", s.handleAmbientMode)
		api.PUT("/capture/minimal", s.handleMinimalMode)

		api.GET("/upload", s.handleUploadState)
		api.POST("/upload", s.handleUpload)
		api.DELETE("/upload", s.handleUploadClear)

		api.GET("/patients", s.handlePatientSearch)
		api.POST("/patients", s.handlePatientCreate)
		api.GET("/patients/:id", s.handlePatientGet)
		api.POST("/patients/:id/open", s.handlePatientOpen)
		api.GET("/mrn", s.handleGenerateMRN)

		api.GET("/link", s.handleLinked)
		api.PUT("/link", s.handleLink)
		api.DELETE("/link", s.handleUnlink)
		api.POST("/link/new", s.handleCreateAndLink)

		api.GET("/review", s.handleReview)
		api.POST("/review/complete", s.handleReviewComplete)
		api.POST("/transcript/copy", s.handleTranscriptCopy)
		api.GET("/transcriptions", s.handleTranscriptions)
		api.POST("/transcriptions/:id/open", s.handleTranscriptionOpen)

		api.GET("/summary", s.handleSummaryGet)
		api.POST("/summary", s.handleSummaryGenerate)
		api.PUT("/summary", s.handleSummaryEdit)
		api.POST("/summary/copy", s.handleSummaryCopy)
		api.POST("/summary/finalize", s.handleSummaryFinalize)
		api.GET("/summaries", s.handleSummaryHistory)

		api.GET("/corrections", s.handleCorrectionsList)
		api.POST("/corrections", s.handleCorrectionAdd)
		api.DELETE("/corrections/:id", s.handleCorrectionDelete)
		api.GET("/corrections/export", s.handleCorrectionsExport)
		api.POST("/corrections/import", s.handleCorrectionsImport)
	}

	// Static front-end. Only paths that exist on disk are served; anything
	// else falls through to the 404 below.
	s.router.Use(static.Serve("/", static.LocalFile(s.config.StaticDir, false)))
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       "itranscript",
		"subscribers":   s.app.Store.Subscribers(),
		"droppedEvents": s.app.Store.DroppedEvents(),
	})
}
