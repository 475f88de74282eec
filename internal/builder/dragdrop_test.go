package builder

import "testing"

// Requirement: The drop position is the index of the first sibling whose
// vertical midpoint lies below the pointer; past every midpoint, the drop
// lands at the end.
func TestDropIndex(t *testing.T) {
	siblings := []Rect{
		{Top: 0, Height: 20},  // midpoint 10
		{Top: 20, Height: 20}, // midpoint 30
		{Top: 40, Height: 20}, // midpoint 50
	}

	tests := []struct {
		name string
		y    float64
		want int
	}{
		{name: "above all midpoints", y: 5, want: 0},
		{name: "between first and second midpoints", y: 25, want: 1},
		{name: "between second and third midpoints", y: 45, want: 2},
		{name: "below all midpoints", y: 55, want: 3},
		{name: "exactly on a midpoint goes after it", y: 30, want: 2},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := DropIndex(test.y, siblings); got != test.want {
				t.Errorf("DropIndex(%v) = %d, want %d", test.y, got, test.want)
			}
		})
	}
}

// Requirement: With no siblings at all, every drop lands at index zero.
func TestDropIndexEmptyList(t *testing.T) {
	if got := DropIndex(100, nil); got != 0 {
		t.Errorf("DropIndex(100, nil) = %d, want 0", got)
	}
}

// Requirement: Dropping a palette item inserts a new component of that type
// at the placeholder position.
func TestDragControllerPaletteDrop(t *testing.T) {
	// Arrange
	s := testStore("a", "b")
	d := NewDragController(s)
	siblings := []Rect{{Top: 0, Height: 20}, {Top: 20, Height: 20}}

	// Act
	d.StartPaletteDrag(TypeDivider)
	d.DragOver(25, siblings, Viewport{Top: -1000, Bottom: 1000})
	d.Drop()

	// Assert
	got := s.Components()
	if len(got) != 3 {
		t.Fatalf("Len() = %d, want 3", len(got))
	}
	if got[1].Type != TypeDivider {
		t.Errorf("component at 1 has type %s, want %s", got[1].Type, TypeDivider)
	}
	if d.Dragging() {
		t.Error("Dragging() = true after drop, want false")
	}
}

// Requirement: Dropping a dragged component moves it to the placeholder
// position; the placeholder is measured against the list without the dragged
// element, so no index correction applies.
func TestDragControllerComponentDrop(t *testing.T) {
	// Arrange: drag "a" below "c". The sibling rects are b and c only, as the
	// dragged element is excluded from the drag-over geometry.
	s := testStore("a", "b", "c")
	d := NewDragController(s)
	siblings := []Rect{{Top: 0, Height: 20}, {Top: 20, Height: 20}}

	// Act
	d.StartComponentDrag(0)
	d.DragOver(55, siblings, Viewport{Top: -1000, Bottom: 1000})
	d.Drop()

	// Assert
	if got := ids(s.Components()); !equalIDs(got, []string{"b", "c", "a"}) {
		t.Errorf("order after drop = %v, want [b c a]", got)
	}
}

// Requirement: Dropping a component back onto its own slot leaves the order
// unchanged.
func TestDragControllerSelfDrop(t *testing.T) {
	// Arrange: drag "b" and point at its own gap between a and c.
	s := testStore("a", "b", "c")
	d := NewDragController(s)
	siblings := []Rect{{Top: 0, Height: 20}, {Top: 40, Height: 20}}

	// Act
	d.StartComponentDrag(1)
	d.DragOver(30, siblings, Viewport{Top: -1000, Bottom: 1000})
	d.Drop()

	// Assert
	if got := ids(s.Components()); !equalIDs(got, []string{"a", "b", "c"}) {
		t.Errorf("order after self drop = %v, want [a b c]", got)
	}
}

// Requirement: A drop with no active payload, or before any drag-over has
// placed the placeholder, mutates nothing.
func TestDragControllerDropWithoutPayload(t *testing.T) {
	tests := []struct {
		name  string
		setup func(d *DragController)
	}{
		{name: "no drag started", setup: func(d *DragController) {}},
		{name: "drag started but no drag-over", setup: func(d *DragController) {
			d.StartComponentDrag(0)
		}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			s := testStore("a", "b")
			d := NewDragController(s)
			test.setup(d)

			// Act
			d.Drop()

			// Assert
			if got := ids(s.Components()); !equalIDs(got, []string{"a", "b"}) {
				t.Errorf("order = %v, want [a b]", got)
			}
		})
	}
}

// Requirement: Starting a component drag with an out-of-range index does not
// arm the controller.
func TestDragControllerStartOutOfRange(t *testing.T) {
	s := testStore("a")
	d := NewDragController(s)

	d.StartComponentDrag(5)

	if d.Dragging() {
		t.Error("Dragging() = true for out-of-range start, want false")
	}
}

// Requirement: Auto-scroll engages within 50px of the viewport edges, in the
// matching direction, and releases in the middle band or when the drag ends.
func TestDragControllerAutoScroll(t *testing.T) {
	view := Viewport{Top: 0, Bottom: 600}

	tests := []struct {
		name string
		y    float64
		want ScrollDirection
	}{
		{name: "near top edge scrolls up", y: 30, want: ScrollUp},
		{name: "near bottom edge scrolls down", y: 580, want: ScrollDown},
		{name: "middle band does not scroll", y: 300, want: ScrollNone},
		{name: "just outside top zone does not scroll", y: 51, want: ScrollNone},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			s := testStore("a", "b")
			d := NewDragController(s)
			d.StartPaletteDrag(TypeText)

			// Act
			d.DragOver(test.y, []Rect{{Top: 0, Height: 600}}, view)

			// Assert
			if got := d.AutoScroll(); got != test.want {
				t.Errorf("AutoScroll() = %v, want %v", got, test.want)
			}
		})
	}
}

// Requirement: Ending the gesture stops auto-scroll and removes the
// placeholder.
func TestDragControllerEndResetsState(t *testing.T) {
	// Arrange
	s := testStore("a", "b")
	d := NewDragController(s)
	d.StartPaletteDrag(TypeText)
	d.DragOver(10, []Rect{{Top: 0, Height: 600}}, Viewport{Top: 0, Bottom: 600})

	// Act
	d.End()

	// Assert
	if d.AutoScroll() != ScrollNone {
		t.Errorf("AutoScroll() = %v after End, want ScrollNone", d.AutoScroll())
	}
	if d.Placeholder() != -1 {
		t.Errorf("Placeholder() = %d after End, want -1", d.Placeholder())
	}
	if d.Dragging() {
		t.Error("Dragging() = true after End, want false")
	}
}
