package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rgarza/folio/internal/assist"
	"github.com/rgarza/folio/internal/core"
	"github.com/rgarza/folio/internal/services"
	"github.com/rgarza/folio/pkg/crypto"
)

// fakeAssist is a test-only Provider returning a canned rewrite.
type fakeAssist struct {
	reply string
	err   error
	last  assist.Request
}

func (f *fakeAssist) Rewrite(_ context.Context, req assist.Request) (string, error) {
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestServer(t *testing.T) (*Server, *fakeAssist) {
	t.Helper()
	storage := services.NewFakeStorage()
	sm := services.NewSessionManager(core.DefaultSessionConfig(), storage, nil)
	provider := &fakeAssist{reply: "rewritten"}

	return New(Config{
		Auth:       services.NewAuthService(storage, crypto.NewArgon2(), sm),
		Checklists: services.NewChecklistService(storage),
		Portfolios: services.NewPortfolioService(storage),
		Assist:     provider,
		Session:    core.DefaultSessionConfig(),
	}), provider
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(method, path string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func registerForm(username, email, password string) url.Values {
	return url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	}
}

// register + login, returning the session cookie.
func loginTestUser(t *testing.T, s *Server) *http.Cookie {
	t.Helper()

	resp, err := s.App().Test(formRequest("/register", registerForm("alice", "alice@example.com", "SecurePass123!")))
	if err != nil {
		t.Fatalf("register request error = %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("register status = %d, want %d", resp.StatusCode, http.StatusFound)
	}

	resp, err = s.App().Test(formRequest("/login", url.Values{
		"username": {"alice"}, "password": {"SecurePass123!"},
	}))
	if err != nil {
		t.Fatalf("login request error = %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusFound)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookie && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

// Requirement: Registration redirects to the login page on success and
// reports duplicates and bad input with the texts the page displays.
func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		setup      func(s *Server)
		wantStatus int
		wantBody   string
		wantLoc    string
	}{
		{
			name:       "valid registration redirects to login page",
			form:       registerForm("alice", "alice@example.com", "SecurePass123!"),
			wantStatus: http.StatusFound,
			wantLoc:    "/login.html",
		},
		{
			name: "duplicate username",
			form: registerForm("alice", "other@example.com", "SecurePass123!"),
			setup: func(s *Server) {
				resp, err := s.App().Test(formRequest("/register", registerForm("alice", "alice@example.com", "SecurePass123!")))
				if err != nil || resp.StatusCode != http.StatusFound {
					t.Fatalf("seed registration failed: %v / %d", err, resp.StatusCode)
				}
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Username already taken.",
		},
		{
			name: "duplicate email",
			form: registerForm("bob", "alice@example.com", "SecurePass123!"),
			setup: func(s *Server) {
				resp, err := s.App().Test(formRequest("/register", registerForm("alice", "alice@example.com", "SecurePass123!")))
				if err != nil || resp.StatusCode != http.StatusFound {
					t.Fatalf("seed registration failed: %v / %d", err, resp.StatusCode)
				}
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Email already exists.",
		},
		{
			name: "password confirmation mismatch",
			form: url.Values{
				"username": {"alice"}, "email": {"alice@example.com"},
				"password": {"SecurePass123!"}, "confirm_password": {"Different123!"},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Passwords do not match. Please try again.",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			s, _ := newTestServer(t)
			if test.setup != nil {
				test.setup(s)
			}

			// Act
			resp, err := s.App().Test(formRequest("/register", test.form))

			// Assert
			if err != nil {
				t.Fatalf("request error = %v", err)
			}
			if resp.StatusCode != test.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, test.wantStatus)
			}
			if test.wantLoc != "" {
				if got := resp.Header.Get("Location"); got != test.wantLoc {
					t.Errorf("Location = %q, want %q", got, test.wantLoc)
				}
			}
			if test.wantBody != "" {
				if got := readBody(t, resp); got != test.wantBody {
					t.Errorf("body = %q, want %q", got, test.wantBody)
				}
			}
		})
	}
}

// Requirement: Login redirects to the main page with a session cookie on
// success; an unknown user and a wrong password get distinct 401 texts.
func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		wantStatus int
		wantBody   string
	}{
		{name: "valid credentials", username: "alice", password: "SecurePass123!", wantStatus: http.StatusFound},
		{name: "unknown user", username: "nobody", password: "SecurePass123!", wantStatus: http.StatusUnauthorized, wantBody: "User not found. Please try again."},
		{name: "wrong password", username: "alice", password: "Wrong123!", wantStatus: http.StatusUnauthorized, wantBody: "Invalid password. Please try again."},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			s, _ := newTestServer(t)
			resp, err := s.App().Test(formRequest("/register", registerForm("alice", "alice@example.com", "SecurePass123!")))
			if err != nil || resp.StatusCode != http.StatusFound {
				t.Fatalf("seed registration failed: %v", err)
			}

			// Act
			resp, err = s.App().Test(formRequest("/login", url.Values{
				"username": {test.username}, "password": {test.password},
			}))

			// Assert
			if err != nil {
				t.Fatalf("request error = %v", err)
			}
			if resp.StatusCode != test.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, test.wantStatus)
			}
			if test.wantBody != "" {
				if got := readBody(t, resp); got != test.wantBody {
					t.Errorf("body = %q, want %q", got, test.wantBody)
				}
			}
			if test.wantStatus == http.StatusFound {
				if got := resp.Header.Get("Location"); got != "/index.html" {
					t.Errorf("Location = %q, want /index.html", got)
				}
			}
		})
	}
}

// Requirement: checkSession and getUserInfo report the cookie's session
// state without requiring auth; logout invalidates the session.
func TestSessionEndpoints(t *testing.T) {
	// Arrange
	s, _ := newTestServer(t)
	cookie := loginTestUser(t, s)

	// Act & Assert: checkSession without cookie
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/checkSession", nil))
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if got := readBody(t, resp); !strings.Contains(got, `"loggedIn":false`) {
		t.Errorf("checkSession without cookie = %s", got)
	}

	// checkSession with cookie
	req := httptest.NewRequest(http.MethodGet, "/checkSession", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if got := readBody(t, resp); !strings.Contains(got, `"loggedIn":true`) {
		t.Errorf("checkSession with cookie = %s", got)
	}

	// getUserInfo with cookie
	req = httptest.NewRequest(http.MethodGet, "/getUserInfo", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	body := readBody(t, resp)
	for _, want := range []string{`"username":"alice"`, `"email":"alice@example.com"`} {
		if !strings.Contains(body, want) {
			t.Errorf("getUserInfo missing %s: %s", want, body)
		}
	}

	// logout, then the session no longer checks out
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	if _, err := s.App().Test(req); err != nil {
		t.Fatalf("logout request error = %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/checkSession", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if got := readBody(t, resp); !strings.Contains(got, `"loggedIn":false`) {
		t.Errorf("checkSession after logout = %s", got)
	}
}

// Requirement: Document endpoints refuse requests without a valid session.
func TestRequireAuth(t *testing.T) {
	s, _ := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/getChecklist"},
		{http.MethodPost, "/saveChecklist"},
		{http.MethodGet, "/api/portfolios"},
		{http.MethodPost, "/api/save-portfolio"},
		{http.MethodDelete, "/api/portfolio/x"},
		{http.MethodPost, "/api/ai/text-assist"},
	}

	for _, p := range paths {
		resp, err := s.App().Test(httptest.NewRequest(p.method, p.path, nil))
		if err != nil {
			t.Fatalf("%s %s error = %v", p.method, p.path, err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", p.method, p.path, resp.StatusCode)
		}
	}
}

// Requirement: The checklist round-trips byte-identically through save and
// load, and malformed documents are rejected.
func TestChecklistEndpoints(t *testing.T) {
	// Arrange
	s, _ := newTestServer(t)
	cookie := loginTestUser(t, s)
	doc := `{"template":true,"domain":false,"project":false,"resume":false,"design":true}`

	// Act: save
	req := httptest.NewRequest(http.MethodPost, "/saveChecklist", strings.NewReader(doc))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("save request error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, body %s", resp.StatusCode, readBody(t, resp))
	}

	// Act: load
	req = httptest.NewRequest(http.MethodGet, "/getChecklist", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("load request error = %v", err)
	}

	// Assert: byte-identical
	if got := readBody(t, resp); got != doc {
		t.Errorf("loaded checklist = %s, want %s", got, doc)
	}

	// Malformed document rejected
	req = httptest.NewRequest(http.MethodPost, "/saveChecklist", strings.NewReader(`["nope"]`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("save request error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed save status = %d, want 400", resp.StatusCode)
	}
}

// Requirement: Portfolios support create, list, fetch, server-rendered
// preview, and delete, always scoped to the session user.
func TestPortfolioEndpoints(t *testing.T) {
	// Arrange
	s, _ := newTestServer(t)
	cookie := loginTestUser(t, s)

	// Create
	req := jsonRequest(http.MethodPost, "/api/save-portfolio", map[string]any{
		"name":     "My Portfolio",
		"template": "minimal",
		"components": []map[string]any{
			{"id": "1", "type": "header", "content": map[string]any{"text": "About Me"}},
		},
	})
	req.AddCookie(cookie)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("save request error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, body %s", resp.StatusCode, readBody(t, resp))
	}
	var saved struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(readBody(t, resp)), &saved); err != nil || saved.ID == "" {
		t.Fatalf("save response has no id (err %v)", err)
	}

	// List
	req = httptest.NewRequest(http.MethodGet, "/api/portfolios", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("list request error = %v", err)
	}
	if got := readBody(t, resp); !strings.Contains(got, saved.ID) || !strings.Contains(got, "My Portfolio") {
		t.Errorf("list = %s, want saved portfolio", got)
	}

	// Fetch
	req = httptest.NewRequest(http.MethodGet, "/api/portfolio/"+saved.ID, nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("get request error = %v", err)
	}
	if got := readBody(t, resp); !strings.Contains(got, `"type":"header"`) {
		t.Errorf("get = %s, want components", got)
	}

	// Preview renders the document markup
	req = httptest.NewRequest(http.MethodGet, "/api/portfolio/"+saved.ID+"/preview", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("preview request error = %v", err)
	}
	preview := readBody(t, resp)
	for _, want := range []string{"portfolio-wrapper template-minimal", "component-header", "About Me"} {
		if !strings.Contains(preview, want) {
			t.Errorf("preview missing %q:\n%s", want, preview)
		}
	}

	// Delete, then fetch is 404
	req = httptest.NewRequest(http.MethodDelete, "/api/portfolio/"+saved.ID, nil)
	req.AddCookie(cookie)
	if _, err := s.App().Test(req); err != nil {
		t.Fatalf("delete request error = %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/portfolio/"+saved.ID, nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("get request error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

// Requirement: The builder tables the editor loads are served as JSON; an
// unknown template is 404.
func TestBuilderEndpoints(t *testing.T) {
	// Arrange
	s, _ := newTestServer(t)
	cookie := loginTestUser(t, s)

	// Palette
	req := httptest.NewRequest(http.MethodGet, "/api/builder/palette", nil)
	req.AddCookie(cookie)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("palette request error = %v", err)
	}
	palette := readBody(t, resp)
	for _, want := range []string{`"type":"hero"`, `"type":"divider"`} {
		if !strings.Contains(palette, want) {
			t.Errorf("palette missing %s: %s", want, palette)
		}
	}

	// Defaults
	req = httptest.NewRequest(http.MethodGet, "/api/builder/defaults/modern", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("defaults request error = %v", err)
	}
	if got := readBody(t, resp); !strings.Contains(got, `"type":"hero"`) {
		t.Errorf("defaults = %s, want hero component", got)
	}

	// Unknown template
	req = httptest.NewRequest(http.MethodGet, "/api/builder/defaults/brutalist", nil)
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("defaults request error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown template status = %d, want 404", resp.StatusCode)
	}
}

// Requirement: text-assist validates the request, forwards the component
// context to the provider, and reports provider failures as 502.
func TestTextAssist(t *testing.T) {
	// Arrange
	s, provider := newTestServer(t)
	cookie := loginTestUser(t, s)

	// Act: valid request
	req := jsonRequest(http.MethodPost, "/api/ai/text-assist", assist.Request{
		Text: "my bio", Mode: assist.ModeImprove, ComponentType: "hero", Field: "bio",
	})
	req.AddCookie(cookie)
	resp, err := s.App().Test(req)

	// Assert
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if got := readBody(t, resp); !strings.Contains(got, `"text":"rewritten"`) {
		t.Errorf("response = %s", got)
	}
	if provider.last.ComponentType != "hero" || provider.last.Field != "bio" {
		t.Errorf("provider request = %+v, want component context", provider.last)
	}

	// Unknown mode is rejected before the provider
	req = jsonRequest(http.MethodPost, "/api/ai/text-assist", assist.Request{Text: "x", Mode: "sarcastic"})
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown mode status = %d, want 400", resp.StatusCode)
	}

	// Provider failure is 502
	provider.err = errors.New("upstream down")
	req = jsonRequest(http.MethodPost, "/api/ai/text-assist", assist.Request{Text: "x", Mode: assist.ModeImprove})
	req.AddCookie(cookie)
	resp, err = s.App().Test(req)
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("provider failure status = %d, want 502", resp.StatusCode)
	}
}
