package server

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/rgarza/folio/internal/assist"
	"github.com/rgarza/folio/internal/builder"
	"github.com/rgarza/folio/internal/core"
)

func (s *Server) getChecklist(c fiber.Ctx) error {
	user := currentUser(c)

	doc, err := s.checklists.GetChecklist(user.ID)
	if err != nil {
		s.log.Error("checklist load failed", zap.String("user_id", user.ID), zap.Error(err))
		return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{"error": errorText(err)})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(doc)
}

func (s *Server) saveChecklist(c fiber.Ctx) error {
	user := currentUser(c)

	if err := s.checklists.SaveChecklist(user.ID, c.Body()); err != nil {
		if mapErrorToStatus(err) == fiber.StatusInternalServerError {
			s.log.Error("checklist save failed", zap.String("user_id", user.ID), zap.Error(err))
		}
		return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{"error": errorText(err)})
	}
	return c.JSON(fiber.Map{"saved": true})
}

func (s *Server) listPortfolios(c fiber.Ctx) error {
	user := currentUser(c)

	metas, err := s.portfolios.ListPortfolios(user.ID)
	if err != nil {
		s.log.Error("portfolio list failed", zap.String("user_id", user.ID), zap.Error(err))
		return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{"error": errorText(err)})
	}
	return c.JSON(fiber.Map{"portfolios": metas})
}

func (s *Server) getPortfolio(c fiber.Ctx) error {
	user := currentUser(c)

	p, err := s.portfolios.GetPortfolio(user.ID, c.Params("id"))
	if err != nil {
		return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{"error": errorText(err)})
	}
	return c.JSON(p)
}

// previewPortfolio renders the stored document server-side with the same
// renderers the editor uses, without edit chrome.
func (s *Server) previewPortfolio(c fiber.Ctx) error {
	user := currentUser(c)

	p, err := s.portfolios.GetPortfolio(user.ID, c.Params("id"))
	if err != nil {
		return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{"error": errorText(err)})
	}

	markup := builder.RenderDocument(p.Template, p.Components, builder.RenderOptions{})
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(markup)
}

func (s *Server) savePortfolio(c fiber.Ctx) error {
	user := currentUser(c)

	var p core.Portfolio
	if err := c.Bind().Body(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errorText(core.ErrPortfolioInvalid)})
	}

	saved, err := s.portfolios.SavePortfolio(user.ID, &p)
	if err != nil {
		if mapErrorToStatus(err) == fiber.StatusInternalServerError {
			s.log.Error("portfolio save failed", zap.String("user_id", user.ID), zap.Error(err))
		}
		return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{"error": errorText(err)})
	}
	return c.JSON(saved)
}

func (s *Server) deletePortfolio(c fiber.Ctx) error {
	user := currentUser(c)

	if err := s.portfolios.DeletePortfolio(user.ID, c.Params("id")); err != nil {
		return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{"error": errorText(err)})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (s *Server) builderPalette(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"components": builder.Palette()})
}

func (s *Server) builderDefaults(c fiber.Ctx) error {
	template := c.Params("template")

	for _, name := range builder.Templates() {
		if name == template {
			return c.JSON(fiber.Map{
				"template":   name,
				"components": builder.TemplateComponents(name),
			})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown template"})
}

func (s *Server) textAssist(c fiber.Ctx) error {
	var req assist.Request
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rewritten, err := s.assist.Rewrite(c.Context(), req)
	if err != nil {
		s.log.Error("text assist failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "text assist unavailable"})
	}
	return c.JSON(fiber.Map{"text": rewritten})
}
