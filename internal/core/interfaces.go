package core

import "time"

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORTS (Database operations)
// ============================================

// UserStorage defines user-related database operations.
//
// CreateUser must surface duplicate-key violations as ErrUsernameTaken or
// ErrEmailRegistered; the uniqueness constraint is authoritative, not a
// pre-insert existence check.
type UserStorage interface {
	CreateUser(u *User) error
	GetUserByID(id string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	GetUserByEmail(email string) (*User, error)
}

// SessionStorage defines session-related database operations
type SessionStorage interface {
	CreateSession(session *Session) error
	GetSessionByHash(tokenHash string) (*Session, error)
	DeleteSessionByHash(tokenHash string) error
	DeleteUserSessions(userID string) error
	DeleteExpiredSessions() (int, error)
}

// ChecklistStorage holds one whole-document JSON checklist per user.
// Saves replace the document; Get returns it byte-for-byte as saved.
type ChecklistStorage interface {
	GetChecklist(userID string) ([]byte, error)
	SaveChecklist(userID string, doc []byte) error
}

// PortfolioStorage holds portfolio documents keyed by owner. Every operation
// is scoped to ownerID so one user can never read another's document.
type PortfolioStorage interface {
	ListPortfolios(ownerID string) ([]*PortfolioMeta, error)
	GetPortfolio(ownerID, id string) (*Portfolio, error)
	SavePortfolio(p *Portfolio) error
	DeletePortfolio(ownerID, id string) error
}

type StorageAdapter interface {
	UserStorage
	SessionStorage
	ChecklistStorage
	PortfolioStorage
}

// ============================================
// SERVICE PORTS (consumed by the HTTP adapter)
// ============================================

// AuthHandler defines authentication operations
type AuthHandler interface {
	Register(input RegisterInput) (*User, error)
	Login(input LoginInput, ipAddress, userAgent string) (*LoginResult, error)
	Logout(token string) error
	GetSession(token string) (*SessionData, error)
}

// ChecklistHandler serves each user's onboarding checklist document.
type ChecklistHandler interface {
	GetChecklist(userID string) ([]byte, error)
	SaveChecklist(userID string, doc []byte) error
}

// PortfolioHandler serves each user's portfolio documents.
type PortfolioHandler interface {
	ListPortfolios(ownerID string) ([]*PortfolioMeta, error)
	GetPortfolio(ownerID, id string) (*Portfolio, error)
	SavePortfolio(ownerID string, p *Portfolio) (*Portfolio, error)
	DeletePortfolio(ownerID, id string) error
}

// ============================================
// CACHE PORT
// ============================================

// Cache defines session caching operations
type Cache interface {
	Get(tokenHash string) (*Session, error)
	Set(tokenHash string, session *Session) error
	Delete(tokenHash string) error
	Clear() error
}

// CacheConfig configures cache behavior
type CacheConfig struct {
	TTL     time.Duration
	MaxSize int
}

// SessionConfig configures session lifetime.
type SessionConfig struct {
	MaxAge time.Duration
}

// DefaultSessionConfig returns the fixed 2-hour session time-to-live.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{MaxAge: 2 * time.Hour}
}
