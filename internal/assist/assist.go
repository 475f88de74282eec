// Package assist rewrites portfolio text through a chat-completions API.
// The editor offers it on rich-text fields; the server proxies requests here
// so the API key never reaches the browser.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Mode selects the rewrite the user asked for.
type Mode string

const (
	ModeImprove      Mode = "improve"
	ModeShorten      Mode = "shorten"
	ModeExpand       Mode = "expand"
	ModeProfessional Mode = "professional"
)

// Modes lists every rewrite mode in menu order.
var Modes = []Mode{ModeImprove, ModeShorten, ModeExpand, ModeProfessional}

var (
	ErrEmptyText     = errors.New("no text to rewrite")
	ErrUnknownMode   = errors.New("unknown assist mode")
	ErrNotConfigured = errors.New("assist provider not configured")
)

// Request is one rewrite: the text, the chosen mode, and where in the
// portfolio the text lives so the prompt can carry that context.
type Request struct {
	Text          string `json:"text"`
	Mode          Mode   `json:"mode"`
	ComponentType string `json:"componentType"`
	Field         string `json:"field"`
}

// Provider rewrites text. Implementations must honor ctx cancellation.
type Provider interface {
	Rewrite(ctx context.Context, req Request) (string, error)
}

var modeInstructions = map[Mode]string{
	ModeImprove:      "Improve the writing while keeping its meaning and length.",
	ModeShorten:      "Rewrite the text to be significantly shorter while keeping the key points.",
	ModeExpand:       "Expand the text with more detail while keeping its tone.",
	ModeProfessional: "Rewrite the text in a polished, professional tone.",
}

// Validate reports whether the request can be served at all.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if _, ok := modeInstructions[r.Mode]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, r.Mode)
	}
	return nil
}

// prompt builds the system instruction for a request, folding in where the
// text appears when the client said so.
func prompt(r Request) string {
	var b strings.Builder
	b.WriteString("You are editing text for a personal portfolio website. ")
	b.WriteString(modeInstructions[r.Mode])
	if r.ComponentType != "" {
		fmt.Fprintf(&b, " The text is the %s", r.ComponentType)
		if r.Field != "" {
			fmt.Fprintf(&b, " section's %q field", r.Field)
		} else {
			b.WriteString(" section")
		}
		b.WriteString(" of the portfolio.")
	}
	b.WriteString(" Reply with only the rewritten text, no preamble and no quotes.")
	return b.String()
}
