package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rgarza/folio/internal/core"
	"github.com/rgarza/folio/pkg/crypto"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 8

type AuthService struct {
	db             core.StorageAdapter
	passwordHasher crypto.PasswordHandler
	sessionManager *SessionManager
}

// Ensure AuthService implements AuthHandler
var _ core.AuthHandler = (*AuthService)(nil)

func NewAuthService(db core.StorageAdapter, passwordHasher crypto.PasswordHandler, sessionManager *SessionManager) *AuthService {
	return &AuthService{
		db:             db,
		passwordHasher: passwordHasher,
		sessionManager: sessionManager,
	}
}

func validateRegisterInput(input core.RegisterInput) error {
	switch {
	case strings.TrimSpace(input.Username) == "":
		return core.ErrUsernameRequired
	case strings.TrimSpace(input.Email) == "":
		return core.ErrEmailRequired
	case !strings.Contains(input.Email, "@"):
		return core.ErrInvalidEmail
	case input.Password == "":
		return core.ErrPasswordRequired
	case len(input.Password) < MinPasswordLength:
		return core.ErrPasswordTooShort
	case input.Password != input.ConfirmPassword:
		return core.ErrPasswordMismatch
	}
	return nil
}

// Register creates a new account with a hashed password and the user's
// starting checklist. It does not create a session; the client signs in
// afterwards.
func (s *AuthService) Register(input core.RegisterInput) (*core.User, error) {
	// Step 1: Validate the input
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	// Step 2: Reject duplicates early for a friendlier error. The database
	// unique constraints remain authoritative; CreateUser reports races the
	// pre-check misses with the same errors.
	if _, err := s.db.GetUserByUsername(input.Username); err == nil {
		return nil, core.ErrUsernameTaken
	} else if err != core.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if _, err := s.db.GetUserByEmail(input.Email); err == nil {
		return nil, core.ErrEmailRegistered
	} else if err != core.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	// Step 3: Hash the password
	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 4: Create the user
	now := time.Now()
	user := &core.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.CreateUser(user); err != nil {
		return nil, err
	}

	// Step 5: Create the user's starting checklist
	doc, err := json.Marshal(core.DefaultChecklist())
	if err != nil {
		return nil, fmt.Errorf("failed to encode default checklist: %w", err)
	}
	if err := s.db.SaveChecklist(user.ID, doc); err != nil {
		return nil, fmt.Errorf("failed to create default checklist: %w", err)
	}

	return user, nil
}

// Login authenticates by username and password and opens a session. An
// unknown username and a wrong password report distinct errors.
func (s *AuthService) Login(input core.LoginInput, ipAddress, userAgent string) (*core.LoginResult, error) {
	// Step 1: Find the user by username
	user, err := s.db.GetUserByUsername(input.Username)
	if err != nil {
		if err == core.ErrUserNotFound {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Step 2: Verify the password
	valid, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	// Step 3: Create a new session
	sessionResult, err := s.sessionManager.Create(user.ID, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &core.LoginResult{
		User:    user,
		Session: sessionResult.Session,
		Token:   sessionResult.Token,
	}, nil
}

// Logout invalidates the session behind the token.
func (s *AuthService) Logout(token string) error {
	return s.sessionManager.Destroy(token)
}

// GetSession resolves a cookie token into the session and its user.
func (s *AuthService) GetSession(token string) (*core.SessionData, error) {
	session, err := s.sessionManager.Verify(token)
	if err != nil {
		if err == core.ErrSessionNotFound {
			return nil, core.ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.db.GetUserByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &core.SessionData{
		User:    user,
		Session: session,
	}, nil
}
