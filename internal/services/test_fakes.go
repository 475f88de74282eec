package services

import (
	"errors"
	"sync"
	"time"

	"github.com/rgarza/folio/internal/core"
)

// FakeStorage is a test-only fake implementing core.StorageAdapter. It keeps
// everything in maps and exposes error fields for behavior injection.
type FakeStorage struct {
	mu         sync.RWMutex
	users      map[string]*core.User
	sessions   map[string]*core.Session // keyed by token hash
	checklists map[string][]byte
	portfolios map[string]map[string]*core.Portfolio // ownerID -> id -> doc

	createUserErr    error
	createSessionErr error
	getSessionErr    error
	saveChecklistErr error
	savePortfolioErr error
}

var _ core.StorageAdapter = (*FakeStorage)(nil)

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users:      make(map[string]*core.User),
		sessions:   make(map[string]*core.Session),
		checklists: make(map[string][]byte),
		portfolios: make(map[string]map[string]*core.Portfolio),
	}
}

// UserStorage implementation

func (f *FakeStorage) CreateUser(u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createUserErr != nil {
		return f.createUserErr
	}
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return core.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return core.ErrEmailRegistered
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeStorage) GetUserByID(id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStorage) GetUserByUsername(username string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStorage) GetUserByEmail(email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

// SessionStorage implementation

func (f *FakeStorage) CreateSession(s *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createSessionErr != nil {
		return f.createSessionErr
	}
	f.sessions[s.TokenHash] = s
	return nil
}

func (f *FakeStorage) GetSessionByHash(tokenHash string) (*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getSessionErr != nil {
		return nil, f.getSessionErr
	}
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

func (f *FakeStorage) DeleteSessionByHash(tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[tokenHash]; !ok {
		return core.ErrSessionNotFound
	}
	delete(f.sessions, tokenHash)
	return nil
}

func (f *FakeStorage) DeleteUserSessions(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, k)
		}
	}
	return nil
}

func (f *FakeStorage) DeleteExpiredSessions() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	now := time.Now()
	for k, s := range f.sessions {
		if now.After(s.ExpiresAt) {
			delete(f.sessions, k)
			count++
		}
	}
	return count, nil
}

// ChecklistStorage implementation

func (f *FakeStorage) GetChecklist(userID string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	doc, ok := f.checklists[userID]
	if !ok {
		return nil, core.ErrChecklistNotFound
	}
	return doc, nil
}

func (f *FakeStorage) SaveChecklist(userID string, doc []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveChecklistErr != nil {
		return f.saveChecklistErr
	}
	stored := make([]byte, len(doc))
	copy(stored, doc)
	f.checklists[userID] = stored
	return nil
}

// PortfolioStorage implementation

func (f *FakeStorage) ListPortfolios(ownerID string) ([]*core.PortfolioMeta, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	metas := []*core.PortfolioMeta{}
	for _, p := range f.portfolios[ownerID] {
		metas = append(metas, p.Meta())
	}
	return metas, nil
}

func (f *FakeStorage) GetPortfolio(ownerID, id string) (*core.Portfolio, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p, ok := f.portfolios[ownerID][id]
	if !ok {
		return nil, core.ErrPortfolioNotFound
	}
	return p, nil
}

func (f *FakeStorage) SavePortfolio(p *core.Portfolio) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.savePortfolioErr != nil {
		return f.savePortfolioErr
	}
	if f.portfolios[p.OwnerID] == nil {
		f.portfolios[p.OwnerID] = make(map[string]*core.Portfolio)
	}
	f.portfolios[p.OwnerID][p.ID] = p
	return nil
}

func (f *FakeStorage) DeletePortfolio(ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.portfolios[ownerID][id]; !ok {
		return core.ErrPortfolioNotFound
	}
	delete(f.portfolios[ownerID], id)
	return nil
}

// FakeCache is a test-only fake implementing core.Cache.
type FakeCache struct {
	mu     sync.RWMutex
	cache  map[string]*core.Session
	getErr error
	setErr error
	hits   int
	misses int
}

var _ core.Cache = (*FakeCache)(nil)

func NewFakeCache() *FakeCache {
	return &FakeCache{cache: make(map[string]*core.Session)}
}

func (f *FakeCache) Get(tokenHash string) (*core.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.cache[tokenHash]
	if !ok {
		f.misses++
		return nil, core.ErrCacheNotFound
	}
	f.hits++
	return s, nil
}

func (f *FakeCache) Set(tokenHash string, session *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.cache[tokenHash] = session
	return nil
}

func (f *FakeCache) Delete(tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cache, tokenHash)
	return nil
}

func (f *FakeCache) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]*core.Session)
	return nil
}

func (f *FakeCache) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.cache)
}

// fakeFailingCache is a cache that always fails Set operations.
type fakeFailingCache struct{}

var _ core.Cache = (*fakeFailingCache)(nil)

func (fakeFailingCache) Get(string) (*core.Session, error)   { return nil, core.ErrCacheNotFound }
func (fakeFailingCache) Set(string, *core.Session) error     { return errors.New("cache set failed") }
func (fakeFailingCache) Delete(string) error                 { return errors.New("cache delete failed") }
func (fakeFailingCache) Clear() error                        { return errors.New("cache clear failed") }
