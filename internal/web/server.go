// Package web serves the homepage: the full page, the HTML fragments its
// script swaps in, the photo stream and the admin area.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yetobasi/homepage/internal/analytics"
	"github.com/yetobasi/homepage/internal/carousel"
	"github.com/yetobasi/homepage/internal/content"
	"github.com/yetobasi/homepage/internal/scrollspy"
	"github.com/yetobasi/homepage/internal/session"
	"github.com/yetobasi/homepage/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Admin holds the admin login. The admin routes are registered only when
// Enabled is set and a store is configured.
type Admin struct {
	Enabled  bool
	Username string
	Password string
}

type Options struct {
	Site     content.Site
	Sessions *session.Registry
	// Store records visits and events. Tracking and the admin area are off
	// when it is nil.
	Store            *analytics.Store
	Admin            Admin
	AutoplayInterval time.Duration
	Retention        time.Duration
	// ImagesDir is served under /images when it exists.
	ImagesDir string
	Logger    *slog.Logger
}

type Server struct {
	opts       Options
	engine     *gin.Engine
	tmpl       *template.Template
	log        *slog.Logger
	adminToken string
}

// NewRegistry returns a session registry sized for site.
func NewRegistry(site content.Site) *session.Registry {
	return session.NewRegistry(session.Options{
		Photos:       len(site.Photos),
		Sections:     Sections(site),
		HeaderHeight: theme.HeaderHeight,
	})
}

func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sessions == nil {
		opts.Sessions = NewRegistry(opts.Site)
	}
	if opts.AutoplayInterval <= 0 {
		opts.AutoplayInterval = carousel.DefaultInterval
	}
	if opts.Retention <= 0 {
		opts.Retention = analytics.DefaultRetention
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{opts: opts, tmpl: tmpl, log: opts.Logger}
	if opts.Store != nil && opts.Admin.Enabled {
		if s.adminToken, err = generateToken(); err != nil {
			return nil, fmt.Errorf("generating admin token: %w", err)
		}
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(s.log), gin.Recovery())
	if s.opts.Store != nil {
		r.Use(visitorTracking(s.opts.Store, s.log))
	}
	r.SetHTMLTemplate(s.tmpl)

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))
	if s.opts.ImagesDir != "" {
		if fi, err := os.Stat(s.opts.ImagesDir); err == nil && fi.IsDir() {
			r.Static("/images", s.opts.ImagesDir)
		}
	}

	r.GET("/", s.handleIndex)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.opts.Sessions.Len()})
	})
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"Tracking":      s.opts.Store != nil,
			"RetentionDays": int(s.opts.Retention.Hours() / 24),
			"Name":          s.opts.Site.Profile.Name,
		})
	})
	r.GET("/projects", s.handleProjects)

	photos := r.Group("/photos")
	photos.GET("/slide", s.withSession, s.handleSlide)
	photos.GET("/stream", s.withSession, s.handleStream)
	photos.POST("/:action", s.withSession, s.handlePhotoAction)

	nav := r.Group("/nav")
	nav.POST("/visibility", s.withSession, s.handleVisibility)
	nav.GET("/scroll", s.handleScrollPlan)

	r.POST("/clipboard", s.withSession, s.handleClipboard)
	r.POST("/session/close", s.handleSessionClose)

	if s.adminToken != "" {
		s.adminRoutes(r)
	}
	return r
}

// RenderIndex writes the page without a live session, for static export.
// Server-driven widgets render their initial state only.
func (s *Server) RenderIndex(w io.Writer) error {
	site := s.opts.Site
	spy := scrollspy.New(scrollspy.Options{HeaderHeight: theme.HeaderHeight})
	spy.Observe(Sections(site)...)
	defer spy.Close()

	var slide *slideView
	if len(site.Photos) > 0 {
		c, err := carousel.New(len(site.Photos))
		if err != nil {
			return err
		}
		v := buildSlide("", site.Photos, c.State(), s.opts.AutoplayInterval.Milliseconds())
		slide = &v
	}
	if err := s.tmpl.ExecuteTemplate(w, "index.html", buildPage(site, "", spy, slide)); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	return nil
}

// StaticAssets returns the embedded script and stylesheet tree.
func StaticAssets() fs.FS {
	sub, _ := fs.Sub(staticFS, "static")
	return sub
}
