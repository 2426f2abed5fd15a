// Package server composes the portfolio page and serves it with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amrtaher/portfolio/internal/analytics"
	"github.com/amrtaher/portfolio/internal/content"
	"github.com/amrtaher/portfolio/internal/session"
)

// Config holds server configuration.
type Config struct {
	Addr       string
	ImagesDir  string
	AdminToken string
}

// VisitTracker records page views and reports on them. A nil tracker
// disables analytics.
type VisitTracker interface {
	RecordAsync(ip, userAgent, path string)
	Stats(ctx context.Context) (*analytics.Stats, error)
}

// Server serves the portfolio.
type Server struct {
	cfg      Config
	content  *content.Store
	sessions *session.Store
	tracker  VisitTracker

	engine     *gin.Engine
	httpServer *http.Server
	now        func() time.Time
}

// New builds a server. tracker may be nil.
func New(cfg Config, store *content.Store, sessions *session.Store, tracker VisitTracker) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		content:  store,
		sessions: sessions,
		tracker:  tracker,
		now:      time.Now,
	}
	engine, err := s.buildEngine()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

// Blueprint is what each page session is built from for store.
func Blueprint(store *content.Store) session.Blueprint {
	return session.Blueprint{
		Skills:   skillEntries(store),
		Sections: SectionIDs(),
	}
}

func (s *Server) buildEngine() (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	if s.cfg.ImagesDir != "" {
		r.Static("/images", s.cfg.ImagesDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", visitTracking(s.tracker), s.handleIndex)

	frag := r.Group("/", s.pageSession())
	frag.POST("/skills/:index/toggle", s.handleToggleSkill)
	frag.POST("/theme/toggle", s.handleToggleTheme)
	frag.POST("/sections/:id/reveal", s.handleReveal)

	if s.cfg.AdminToken != "" {
		s.setupAdminRoutes(r)
	}
	return r, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Start listens on the configured address until Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("Portfolio listening on %s", s.cfg.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
