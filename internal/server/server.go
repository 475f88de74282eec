// Package server is the Fiber surface: the login/registration endpoints the
// auth pages post to, the per-user document endpoints, and the builder
// endpoints the editor loads its tables from.
package server

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/rgarza/folio/internal/assist"
	"github.com/rgarza/folio/internal/core"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "folio_session"

type Server struct {
	app        *fiber.App
	log        *zap.Logger
	auth       core.AuthHandler
	checklists core.ChecklistHandler
	portfolios core.PortfolioHandler
	assist     assist.Provider

	sessionMaxAge int // cookie Max-Age in seconds
}

type Config struct {
	Auth       core.AuthHandler
	Checklists core.ChecklistHandler
	Portfolios core.PortfolioHandler
	Assist     assist.Provider
	Session    core.SessionConfig
	Log        *zap.Logger
}

func New(config Config) *Server {
	log := config.Log
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		app:           fiber.New(),
		log:           log,
		auth:          config.Auth,
		checklists:    config.Checklists,
		portfolios:    config.Portfolios,
		assist:        config.Assist,
		sessionMaxAge: int(config.Session.MaxAge.Seconds()),
	}
	s.registerRoutes()
	return s
}

// App exposes the underlying Fiber app for serving and testing.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	s.app.Use(s.requestLogger)

	// Auth pages post forms here
	s.app.Post("/login", s.login)
	s.app.Post("/register", s.register)
	s.app.Post("/logout", s.logout)
	s.app.Get("/checkSession", s.checkSession)
	s.app.Get("/getUserInfo", s.getUserInfo)

	// Checklist document
	s.app.Get("/getChecklist", s.requireAuth, s.getChecklist)
	s.app.Post("/saveChecklist", s.requireAuth, s.saveChecklist)

	// Portfolio documents and builder tables
	api := s.app.Group("/api", s.requireAuth)
	api.Get("/portfolios", s.listPortfolios)
	api.Get("/portfolio/:id", s.getPortfolio)
	api.Get("/portfolio/:id/preview", s.previewPortfolio)
	api.Post("/save-portfolio", s.savePortfolio)
	api.Delete("/portfolio/:id", s.deletePortfolio)
	api.Get("/builder/palette", s.builderPalette)
	api.Get("/builder/defaults/:template", s.builderDefaults)
	api.Post("/ai/text-assist", s.textAssist)
}
