package ui

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"drugdash/internal/dashboard"
	"drugdash/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Options configures the HTML server
type Options struct {
	AssetsDir     string
	SessionCookie string
	Metrics       *metrics.Metrics // nil disables /metrics
}

// Server is the dashboard web server
type Server struct {
	router    *gin.Engine
	svc       *dashboard.Service
	templates *template.Template
	opts      Options

	mu     sync.Mutex
	http   *http.Server
	closed bool
}

// NewServer creates a server over svc and parses the page templates
func NewServer(svc *dashboard.Service, opts Options) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("dashboard service cannot be nil")
	}
	if opts.SessionCookie == "" {
		opts.SessionCookie = "drugdash_session"
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		svc:       svc,
		templates: templates,
		opts:      opts,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger(), gin.Recovery())
	s.router.Use(s.sessionMiddleware())

	if s.opts.AssetsDir != "" {
		log.Printf("[Static] Serving images from %s at /assets", s.opts.AssetsDir)
		s.router.Static("/assets", s.opts.AssetsDir)
	}
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.POST("/download", s.handleDownload)
	s.router.POST("/login", s.handleLogin)
	s.router.GET("/export/:file", s.handleExport)

	s.router.GET("/symptoms", s.handleSymptoms)
	s.router.GET("/precautions", s.handlePrecautions)

	s.router.GET("/healthz", s.handleHealth)
	if s.opts.Metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.opts.Metrics.Handler()))
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.http = srv
	s.mu.Unlock()

	log.Printf("Starting drug effectiveness dashboard on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops a server started with Start
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.http
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
