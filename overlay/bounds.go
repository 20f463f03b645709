package overlay

import (
	"scrawl/diagram"
	"scrawl/geometry"
)

// Minimum editor extents, in overlay units. A left-aligned overlay gets
// the taller minimum so wrapped content has room to grow downward.
const (
	minEditorWidth       = 30.0
	minEditorHeightLeft  = 120.0
	minEditorHeightOther = 40.0
	textSizePad          = 20.0
)

// minEditorSize returns the minimum (width, height) for the overlay. The
// width grows with the rendered text size when metrics are known; the
// height depends only on the overlay alignment.
func minEditorSize(state *diagram.RenderState, align string) geometry.Point {
	w := minEditorWidth
	if state.Text != nil {
		w = max(w, state.Text.Size*state.Scale+textSizePad)
	}
	h := minEditorHeightOther
	if align == diagram.AlignLeft {
		h = minEditorHeightLeft
	}
	return geometry.Point{X: w, Y: h}
}

// editorBounds computes where the overlay sits and how big it starts, from
// the element's style spacing, its render state and any previously
// rendered label bounding box.
func editorBounds(kind diagram.ElementKind, style diagram.Style, state *diagram.RenderState, align string) geometry.Rect {
	scale := state.Scale
	minSize := minEditorSize(state, align)

	spacing := style.Spacing() * scale
	top := style.SpacingTop()*scale + spacing
	right := style.SpacingRight()*scale + spacing
	bottom := style.SpacingBottom()*scale + spacing
	left := style.SpacingLeft()*scale + spacing

	b := geometry.Rect{
		X:      state.X,
		Y:      state.Y,
		Width:  max(minSize.X, state.Width-left-right),
		Height: max(minSize.Y, state.Height-top-bottom),
	}

	var bbox *geometry.Rect
	if state.Text != nil {
		bbox = state.Text.BoundingBox
	}

	if kind == diagram.KindEdge {
		b.X = state.AbsoluteOffset.X
		b.Y = state.AbsoluteOffset.Y
		if bbox != nil {
			if bbox.X > 0 {
				b.X = bbox.X
			}
			if bbox.Y > 0 {
				b.Y = bbox.Y
			}
		}
	} else if bbox != nil {
		b.X = min(b.X, bbox.X)
		b.Y = min(b.Y, bbox.Y)
	}

	b.X += left
	b.Y += top

	if bbox != nil {
		if kind == diagram.KindNode {
			b.Width = max(b.Width, bbox.Width)
			b.Height = max(b.Height, bbox.Height)
		} else {
			b.Width = max(minSize.X, bbox.Width)
			b.Height = max(minSize.Y, bbox.Height)
		}
	}

	// The label-position styles anchor a node's label outside the node;
	// the overlay follows by shifting a full element extent. Centered
	// positions need no shift.
	if kind == diagram.KindNode {
		switch style.LabelPosition() {
		case diagram.AlignLeft:
			b.X -= state.Width
		case diagram.AlignRight:
			b.X += state.Width
		}
		switch style.VerticalLabelPosition() {
		case diagram.AlignTop:
			b.Y -= state.Height
		case diagram.AlignBottom:
			b.Y += state.Height
		}
	}

	return b
}
