package builder

// Drag/drop model for the preview pane. Geometry comes in from the host
// (sibling bounding boxes, pointer position, viewport); the controller turns
// it into a drop index, a placeholder position, and an auto-scroll command,
// and applies the drop through the Store.

// Rect is one sibling's vertical extent in viewport coordinates.
type Rect struct {
	Top    float64
	Height float64
}

func (r Rect) midpoint() float64 { return r.Top + r.Height/2 }

// Viewport is the scroll container's vertical extent.
type Viewport struct {
	Top    float64
	Bottom float64
}

// ScrollDirection is the active auto-scroll command.
type ScrollDirection int

const (
	ScrollNone ScrollDirection = iota
	ScrollUp
	ScrollDown
)

const (
	// autoScrollZone is the margin from the viewport edge, in pixels, inside
	// which auto-scroll engages.
	autoScrollZone = 50
	// AutoScrollStep is the scroll distance per tick while auto-scroll is active.
	AutoScrollStep = 5
)

type dragSource int

const (
	sourceNone dragSource = iota
	sourcePalette
	sourceComponent
)

// DropIndex computes the insertion position for a pointer at y: the index of
// the first sibling whose vertical midpoint lies below the pointer, or the end
// of the list if none qualifies. Insertion happens immediately before that
// sibling.
func DropIndex(y float64, siblings []Rect) int {
	for i, r := range siblings {
		if y < r.midpoint() {
			return i
		}
	}
	return len(siblings)
}

// DragController tracks one drag gesture from start to drop or cancel.
type DragController struct {
	store *Store

	source      dragSource
	paletteType Type
	fromIndex   int

	placeholder int // candidate drop index, -1 when no drag-over seen yet
	scroll      ScrollDirection
}

func NewDragController(store *Store) *DragController {
	return &DragController{store: store, placeholder: -1}
}

// StartPaletteDrag begins a drag that will insert a new component of type t.
func (d *DragController) StartPaletteDrag(t Type) {
	d.source = sourcePalette
	d.paletteType = t
	d.placeholder = -1
}

// StartComponentDrag begins a drag that will move the component at index.
func (d *DragController) StartComponentDrag(index int) {
	if index < 0 || index >= d.store.Len() {
		return
	}
	d.source = sourceComponent
	d.fromIndex = index
	d.placeholder = -1
}

// Dragging reports whether a drag payload is active.
func (d *DragController) Dragging() bool { return d.source != sourceNone }

// DragOver recomputes the placeholder position and the auto-scroll command
// for the current pointer position. Called on every pointer-move during a
// drag. siblings excludes the dragged element itself, matching the DOM query
// the original runs (":not(.dragging)").
func (d *DragController) DragOver(y float64, siblings []Rect, view Viewport) {
	if d.source == sourceNone {
		return
	}
	d.placeholder = DropIndex(y, siblings)

	switch {
	case y < view.Top+autoScrollZone:
		d.scroll = ScrollUp
	case y > view.Bottom-autoScrollZone:
		d.scroll = ScrollDown
	default:
		d.scroll = ScrollNone
	}
}

// Placeholder returns the candidate drop index, or -1 when none is active.
func (d *DragController) Placeholder() int { return d.placeholder }

// AutoScroll returns the active auto-scroll command. It resets to ScrollNone
// the instant the pointer leaves the edge margin or the drag ends.
func (d *DragController) AutoScroll() ScrollDirection { return d.scroll }

// Drop applies the drag at the current placeholder. A drop with no active
// payload or no drag-over is a no-op. For component drags the placeholder is
// computed against the sibling list without the dragged element, which is
// exactly how Move interprets its target index, so no adjustment is needed;
// dropping a component onto its own position resolves to no movement.
func (d *DragController) Drop() {
	defer d.End()

	if d.source == sourceNone || d.placeholder < 0 {
		return
	}

	switch d.source {
	case sourcePalette:
		d.store.InsertAt(d.paletteType, d.placeholder)
	case sourceComponent:
		d.store.Move(d.fromIndex, d.placeholder)
	}
}

// End cancels the gesture: placeholder removed, auto-scroll stopped, payload
// cleared. Safe to call redundantly on drag-end after a drop.
func (d *DragController) End() {
	d.source = sourceNone
	d.paletteType = ""
	d.fromIndex = 0
	d.placeholder = -1
	d.scroll = ScrollNone
}
