package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// requireAuth validates the session cookie and stores the user and session in
// the context for downstream handlers.
func (s *Server) requireAuth(c fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not logged in",
		})
	}

	sessionData, err := s.auth.GetSession(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not logged in",
		})
	}

	c.Locals("user", sessionData.User)
	c.Locals("session", sessionData.Session)

	return c.Next()
}

func (s *Server) requestLogger(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	s.log.Info("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
	return err
}
