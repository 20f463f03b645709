package tui

import (
	"scrawl/canvas"
	"scrawl/diagram"
	"scrawl/geometry"
)

// View resolves laid-out diagram elements to render states, one cell per
// overlay unit, and tracks which labels are hidden while being edited. It
// implements overlay.View.
type View struct {
	d      *diagram.Diagram
	hidden map[diagram.ElementRef]bool
}

// NewView creates a view over d. The diagram must have been laid out
// before states are resolved.
func NewView(d *diagram.Diagram) *View {
	return &View{d: d, hidden: make(map[diagram.ElementRef]bool)}
}

// State resolves el to its current on-screen geometry, or nil if the
// element no longer exists.
func (v *View) State(el diagram.ElementRef) *diagram.RenderState {
	switch el.Kind {
	case diagram.KindNode:
		n := v.d.FindNode(el.ID)
		if n == nil {
			return nil
		}
		state := &diagram.RenderState{
			X:      float64(n.X),
			Y:      float64(n.Y),
			Width:  float64(n.Width),
			Height: float64(n.Height),
			Scale:  1,
		}
		if n.Label() != "" {
			// The rendered label block is the node interior.
			w, h := canvas.MeasureBlock(n.Label())
			state.Text = &diagram.TextMetrics{
				BoundingBox: &geometry.Rect{
					X:      float64(n.X + 2),
					Y:      float64(n.Y + 1),
					Width:  float64(w),
					Height: float64(h),
				},
				Margin: geometry.Point{X: 2, Y: 1},
				Size:   v.d.StyleOf(el).FontSize(),
			}
		}
		return state

	case diagram.KindEdge:
		e := v.d.FindEdge(el.ID)
		if e == nil {
			return nil
		}
		from := v.d.FindNode(e.From)
		to := v.d.FindNode(e.To)
		if from == nil || to == nil {
			return nil
		}
		fx, fy := from.X+from.Width/2, from.Y+from.Height/2
		tx, ty := to.X+to.Width/2, to.Y+to.Height/2
		minX, minY := geometry.Min(fx, tx), geometry.Min(fy, ty)

		state := &diagram.RenderState{
			X:      float64(minX),
			Y:      float64(minY),
			Width:  float64(geometry.Abs(tx - fx)),
			Height: float64(geometry.Abs(ty - fy)),
			Scale:  1,
			AbsoluteOffset: geometry.Point{
				X: float64((fx + tx) / 2),
				Y: float64((fy + ty) / 2),
			},
		}
		if e.Label != "" {
			w, h := canvas.MeasureBlock(e.Label)
			state.Text = &diagram.TextMetrics{
				BoundingBox: &geometry.Rect{
					X:      state.AbsoluteOffset.X,
					Y:      state.AbsoluteOffset.Y,
					Width:  float64(w),
					Height: float64(h),
				},
				Size: v.d.StyleOf(el).FontSize(),
			}
		}
		return state

	default:
		return nil
	}
}

// SetLabelHidden marks el's live label as hidden while it is edited.
func (v *View) SetLabelHidden(el diagram.ElementRef, hidden bool) {
	if hidden {
		v.hidden[el] = true
		return
	}
	delete(v.hidden, el)
}

// LabelHidden reports whether el's live label is currently hidden.
func (v *View) LabelHidden(el diagram.ElementRef) bool {
	return v.hidden[el]
}
