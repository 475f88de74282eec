package assist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Requirement: Requests with no text or an unrecognized mode are rejected
// before any network call.
func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "valid request", req: Request{Text: "hello", Mode: ModeImprove}},
		{name: "whitespace text rejected", req: Request{Text: "  \n", Mode: ModeImprove}, wantErr: ErrEmptyText},
		{name: "unknown mode rejected", req: Request{Text: "hello", Mode: "sarcastic"}, wantErr: ErrUnknownMode},
		{name: "empty mode rejected", req: Request{Text: "hello"}, wantErr: ErrUnknownMode},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if err := test.req.Validate(); !errors.Is(err, test.wantErr) {
				t.Errorf("Validate() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}

// Requirement: Every menu mode has an instruction, and the prompt folds in
// the component context when present.
func TestPrompt(t *testing.T) {
	for _, mode := range Modes {
		if _, ok := modeInstructions[mode]; !ok {
			t.Errorf("mode %q has no instruction", mode)
		}
	}

	got := prompt(Request{Text: "x", Mode: ModeShorten, ComponentType: "experience", Field: "description"})
	for _, want := range []string{"shorter", "experience", "description"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}

	bare := prompt(Request{Text: "x", Mode: ModeImprove})
	if strings.Contains(bare, "section") {
		t.Errorf("prompt mentions a section without component context:\n%s", bare)
	}
}

// Requirement: The client posts the chat completions shape with the API key
// in the Authorization header and returns the first choice's text trimmed.
func TestOpenAIRewrite(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q, want /v1/chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request does not decode: %v", err)
		}
		if req.Model != "test-model" || len(req.Messages) != 2 {
			t.Errorf("request = %+v, want model and two messages", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  Rewritten text.\n"}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAI(Config{BaseURL: server.URL + "/v1", APIKey: "test-key", Model: "test-model"})

	// Act
	got, err := provider.Rewrite(context.Background(), Request{Text: "original", Mode: ModeImprove})

	// Assert
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != "Rewritten text." {
		t.Errorf("Rewrite() = %q, want trimmed content", got)
	}
}

// Requirement: Server-side failures surface as errors carrying the status and
// the server's message when it sent one.
func TestOpenAIRewriteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited"},
		})
	}))
	defer server.Close()

	provider := NewOpenAI(Config{BaseURL: server.URL, Model: "test-model"})

	_, err := provider.Rewrite(context.Background(), Request{Text: "x", Mode: ModeImprove})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("Rewrite() error = %v, want server message", err)
	}
}

// Requirement: An unconfigured provider refuses to serve rather than calling
// out to nowhere.
func TestOpenAIRewriteUnconfigured(t *testing.T) {
	provider := NewOpenAI(Config{})

	_, err := provider.Rewrite(context.Background(), Request{Text: "x", Mode: ModeImprove})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Rewrite() error = %v, want ErrNotConfigured", err)
	}
}
