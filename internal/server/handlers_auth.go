package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/rgarza/folio/internal/core"
)

// currentUser returns the user requireAuth stored in the context.
func currentUser(c fiber.Ctx) *core.User {
	user, _ := c.Locals("user").(*core.User)
	return user
}

func (s *Server) setSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   s.sessionMaxAge,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// login checks credentials, opens a session, and sends the browser back to
// the main page. Unknown user and wrong password produce the texts the login
// page displays.
func (s *Server) login(c fiber.Ctx) error {
	var input core.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body.")
	}

	result, err := s.auth.Login(input, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		s.log.Info("login rejected", zap.String("username", input.Username), zap.Error(err))
		return c.Status(mapErrorToStatus(err)).SendString(errorText(err))
	}

	s.setSessionCookie(c, result.Token)
	return c.Redirect().Status(fiber.StatusFound).To("/index.html")
}

// register creates the account and sends the browser to the login page; no
// session is opened until the user signs in.
func (s *Server) register(c fiber.Ctx) error {
	var input core.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body.")
	}

	user, err := s.auth.Register(input)
	if err != nil {
		s.log.Info("registration rejected", zap.String("username", input.Username), zap.Error(err))
		return c.Status(mapErrorToStatus(err)).SendString(errorText(err))
	}

	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return c.Redirect().Status(fiber.StatusFound).To("/login.html")
}

func (s *Server) logout(c fiber.Ctx) error {
	if token := c.Cookies(SessionCookie); token != "" {
		// A stale cookie is fine; the outcome is the same either way
		_ = s.auth.Logout(token)
	}
	s.clearSessionCookie(c)
	return c.JSON(fiber.Map{"loggedIn": false})
}

func (s *Server) checkSession(c fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return c.JSON(fiber.Map{"loggedIn": false})
	}
	if _, err := s.auth.GetSession(token); err != nil {
		return c.JSON(fiber.Map{"loggedIn": false})
	}
	return c.JSON(fiber.Map{"loggedIn": true})
}

func (s *Server) getUserInfo(c fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return c.JSON(fiber.Map{"loggedIn": false})
	}
	data, err := s.auth.GetSession(token)
	if err != nil {
		return c.JSON(fiber.Map{"loggedIn": false})
	}
	return c.JSON(fiber.Map{
		"loggedIn": true,
		"username": data.User.Username,
		"email":    data.User.Email,
	})
}
