package core

import (
	"time"

	"github.com/rgarza/folio/internal/builder"
)

// User is an identity record. Created at registration, read at login,
// never mutated afterwards.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session binds an opaque cookie token to an authenticated user, time-limited.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"-"` // Never expose in JSON (security!)
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionData combines user and session info. The model returned to clients.
type SessionData struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

// RegisterInput is the registration request body. Tagged for both the JSON
// and the urlencoded form encodings the login pages submit.
type RegisterInput struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResult carries the authenticated user, the new session, and the
// plaintext token destined for the cookie.
type LoginResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Token   string   `json:"-"`
}

// ChecklistSteps are the named onboarding steps every checklist carries.
var ChecklistSteps = []string{"domain", "template", "project", "resume", "design"}

// DefaultChecklist returns the document created at registration: every step false.
func DefaultChecklist() map[string]bool {
	steps := make(map[string]bool, len(ChecklistSteps))
	for _, step := range ChecklistSteps {
		steps[step] = false
	}
	return steps
}

// PortfolioMeta is the listing view of a portfolio: everything but the components.
type PortfolioMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Portfolio is a per-user document. The component list is the rendering order;
// saves replace the stored document atomically.
type Portfolio struct {
	ID         string              `json:"id"`
	OwnerID    string              `json:"-"`
	Name       string              `json:"name"`
	Template   string              `json:"template"`
	Components []builder.Component `json:"components"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Meta returns the listing view of p.
func (p *Portfolio) Meta() *PortfolioMeta {
	return &PortfolioMeta{
		ID:        p.ID,
		Name:      p.Name,
		Template:  p.Template,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
