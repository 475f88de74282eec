package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rgarza/folio/internal/builder"
	"github.com/rgarza/folio/internal/core"
)

// ChecklistService serves each user's onboarding checklist as one whole
// JSON document. Saves replace the document; reads return the stored bytes
// untouched.
type ChecklistService struct {
	db core.ChecklistStorage
}

var _ core.ChecklistHandler = (*ChecklistService)(nil)

func NewChecklistService(db core.ChecklistStorage) *ChecklistService {
	return &ChecklistService{db: db}
}

// GetChecklist returns the user's checklist document. Users registered
// before the checklist existed fall back to a fresh default document.
func (s *ChecklistService) GetChecklist(userID string) ([]byte, error) {
	doc, err := s.db.GetChecklist(userID)
	if err == core.ErrChecklistNotFound {
		return json.Marshal(core.DefaultChecklist())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return doc, nil
}

// SaveChecklist validates that doc is a flat object of boolean steps and
// stores the submitted bytes verbatim, so unknown step names round-trip.
func (s *ChecklistService) SaveChecklist(userID string, doc []byte) error {
	var steps map[string]bool
	if err := json.Unmarshal(doc, &steps); err != nil {
		return core.ErrChecklistInvalid
	}
	if steps == nil {
		return core.ErrChecklistInvalid
	}

	if err := s.db.SaveChecklist(userID, doc); err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}
	return nil
}

// PortfolioService serves each user's portfolio documents. Every operation
// is scoped to the owner; ids never reach across users.
type PortfolioService struct {
	db  core.PortfolioStorage
	now func() time.Time
}

var _ core.PortfolioHandler = (*PortfolioService)(nil)

func NewPortfolioService(db core.PortfolioStorage) *PortfolioService {
	return &PortfolioService{db: db, now: time.Now}
}

func (s *PortfolioService) ListPortfolios(ownerID string) ([]*core.PortfolioMeta, error) {
	return s.db.ListPortfolios(ownerID)
}

func (s *PortfolioService) GetPortfolio(ownerID, id string) (*core.Portfolio, error) {
	return s.db.GetPortfolio(ownerID, id)
}

// SavePortfolio stores a portfolio document. A portfolio without an id is
// created with a fresh one; an existing id replaces the stored document while
// keeping its creation time. Saving an id another user owns reads as not
// found and creates nothing.
func (s *PortfolioService) SavePortfolio(ownerID string, p *core.Portfolio) (*core.Portfolio, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, core.ErrNameRequired
	}
	if p.Template == "" {
		p.Template = builder.Templates()[0]
	}
	if p.Components == nil {
		p.Components = []builder.Component{}
	}

	now := s.now()
	p.OwnerID = ownerID
	p.UpdatedAt = now

	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	} else {
		existing, err := s.db.GetPortfolio(ownerID, p.ID)
		switch err {
		case nil:
			p.CreatedAt = existing.CreatedAt
		case core.ErrPortfolioNotFound:
			p.CreatedAt = now
		default:
			return nil, fmt.Errorf("failed to load portfolio: %w", err)
		}
	}

	if err := s.db.SavePortfolio(p); err != nil {
		return nil, fmt.Errorf("failed to save portfolio: %w", err)
	}
	return p, nil
}

func (s *PortfolioService) DeletePortfolio(ownerID, id string) error {
	return s.db.DeletePortfolio(ownerID, id)
}
