package diagram

import "scrawl/geometry"

// TextMetrics describes the rendered label block of an element, when one
// exists.
type TextMetrics struct {
	// BoundingBox is the on-screen extent of the rendered label, if the
	// renderer has produced one.
	BoundingBox *geometry.Rect
	// Margin is the label offset from the element origin.
	Margin geometry.Point
	// Size is the effective point size the label was rendered at.
	Size float64
}

// RenderState is the resolved on-screen representation of an element at a
// moment in time. It is read-only from the overlay's point of view; a new
// state is resolved on every use rather than cached.
type RenderState struct {
	X, Y          float64
	Width, Height float64
	Scale         float64

	// AbsoluteOffset is the label anchor of an edge in absolute
	// coordinates. Unused for nodes.
	AbsoluteOffset geometry.Point

	// Text is nil when the element has no rendered label block.
	Text *TextMetrics
}

// StateProvider resolves an element to its current render state. A nil
// result means the element is not currently rendered (deleted or hidden),
// which the overlay treats as a cancellation signal, never as an error.
type StateProvider interface {
	State(el ElementRef) *RenderState
}
