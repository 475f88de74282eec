package builder

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrComponentNotFound   = errors.New("component not found")
	ErrContentTypeMismatch = errors.New("content type does not match component type")
)

// Store holds the authoritative ordered component list for the portfolio
// being edited. Every mutation goes through one of its methods; each
// successful mutation bumps the revision counter, which stands in for the
// original's full preview re-render.
//
// Store is not safe for concurrent use; the builder is single-threaded,
// driven by one event loop.
type Store struct {
	components []Component
	selectedID string
	revision   int
	now        func() time.Time
}

func NewStore(components ...Component) *Store {
	s := &Store{now: time.Now}
	s.components = append(s.components, components...)
	return s
}

// Load replaces the whole document, clearing selection.
func (s *Store) Load(components []Component) {
	s.components = append(s.components[:0:0], components...)
	s.selectedID = ""
	s.revision++
}

// Components returns the list in rendering order. The slice is a copy;
// mutations still have to go through the store.
func (s *Store) Components() []Component {
	out := make([]Component, len(s.components))
	copy(out, s.components)
	return out
}

func (s *Store) Len() int { return len(s.components) }

// Revision increments on every successful mutation.
func (s *Store) Revision() int { return s.revision }

// ByID returns the component with the given id.
func (s *Store) ByID(id string) (Component, bool) {
	for _, c := range s.components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// IndexOf returns the position of the component with the given id, or -1.
func (s *Store) IndexOf(id string) int {
	for i, c := range s.components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Append adds a new component of type t with its default content at the end
// of the list.
func (s *Store) Append(t Type) (Component, error) {
	return s.InsertAt(t, len(s.components))
}

// InsertAt adds a new component of type t at index. The index is clamped to
// the list bounds.
func (s *Store) InsertAt(t Type, index int) (Component, error) {
	content := DefaultContent(t)
	if content == nil {
		return Component{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}

	c := Component{ID: s.newID(), Type: t, Content: content}

	if index < 0 {
		index = 0
	}
	if index > len(s.components) {
		index = len(s.components)
	}

	s.components = append(s.components, Component{})
	copy(s.components[index+1:], s.components[index:])
	s.components[index] = c
	s.revision++
	return c, nil
}

// DeleteByID removes the component with the given id. Deleting the selected
// component clears the selection, closing the editor panel.
func (s *Store) DeleteByID(id string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.components = append(s.components[:i], s.components[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.revision++
	return true
}

// Move removes the component at from and reinserts it at to in one step.
// to is interpreted against the list with the source element already removed,
// so callers moving an element downward account for the off-by-one.
// Out-of-range indexes and from == to are no-ops.
func (s *Store) Move(from, to int) {
	if from < 0 || from >= len(s.components) || from == to {
		return
	}
	if to < 0 || to > len(s.components)-1 {
		return
	}

	moved := s.components[from]
	s.components = append(s.components[:from], s.components[from+1:]...)

	s.components = append(s.components, Component{})
	copy(s.components[to+1:], s.components[to:])
	s.components[to] = moved
	s.revision++
}

// UpdateContent replaces the content of the component with the given id.
// The new content must carry the component's own type.
func (s *Store) UpdateContent(id string, content Content) error {
	i := s.IndexOf(id)
	if i < 0 {
		return ErrComponentNotFound
	}
	if content == nil || content.Type() != s.components[i].Type {
		return ErrContentTypeMismatch
	}
	s.components[i].Content = content
	s.revision++
	return nil
}

// Select marks the component with the given id as the one open in the editor.
func (s *Store) Select(id string) error {
	if s.IndexOf(id) < 0 {
		return ErrComponentNotFound
	}
	s.selectedID = id
	return nil
}

// Selected returns the component open in the editor, if any.
func (s *Store) Selected() (Component, bool) {
	if s.selectedID == "" {
		return Component{}, false
	}
	return s.ByID(s.selectedID)
}

func (s *Store) ClearSelection() { s.selectedID = "" }

// newID generates a millisecond-timestamp id like the original builder, bumped
// until unique so rapid inserts never collide.
func (s *Store) newID() string {
	n := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if s.IndexOf(id) < 0 {
			return id
		}
		n++
	}
}
