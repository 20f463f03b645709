package overlay

import (
	"testing"

	"scrawl/diagram"
	"scrawl/geometry"
)

func TestEditorBoundsNode(t *testing.T) {
	tests := []struct {
		name     string
		style    diagram.Style
		state    *diagram.RenderState
		align    string
		expected geometry.Rect
	}{
		{
			name:     "centered label with default spacing",
			style:    nil,
			state:    &diagram.RenderState{X: 10, Y: 20, Width: 100, Height: 40, Scale: 1},
			align:    diagram.AlignLeft,
			expected: geometry.Rect{X: 12, Y: 22, Width: 96, Height: 120},
		},
		{
			name:     "label position right shifts by element width",
			style:    diagram.Style{diagram.StyleLabelPosition: "right"},
			state:    &diagram.RenderState{X: 10, Y: 20, Width: 100, Height: 40, Scale: 1},
			align:    diagram.AlignLeft,
			expected: geometry.Rect{X: 112, Y: 22, Width: 96, Height: 120},
		},
		{
			name:     "label position left shifts by element width",
			style:    diagram.Style{diagram.StyleLabelPosition: "left"},
			state:    &diagram.RenderState{X: 10, Y: 20, Width: 100, Height: 40, Scale: 1},
			align:    diagram.AlignLeft,
			expected: geometry.Rect{X: -88, Y: 22, Width: 96, Height: 120},
		},
		{
			name:     "vertical label position top shifts by element height",
			style:    diagram.Style{diagram.StyleVerticalLabelPosition: "top"},
			state:    &diagram.RenderState{X: 10, Y: 20, Width: 100, Height: 40, Scale: 1},
			align:    diagram.AlignLeft,
			expected: geometry.Rect{X: 12, Y: -18, Width: 96, Height: 120},
		},
		{
			name:     "vertical label position bottom shifts by element height",
			style:    diagram.Style{diagram.StyleVerticalLabelPosition: "bottom"},
			state:    &diagram.RenderState{X: 10, Y: 20, Width: 100, Height: 40, Scale: 1},
			align:    diagram.AlignLeft,
			expected: geometry.Rect{X: 12, Y: 62, Width: 96, Height: 120},
		},
		{
			name:     "non-left alignment lowers minimum height",
			style:    nil,
			state:    &diagram.RenderState{X: 0, Y: 0, Width: 100, Height: 60, Scale: 1},
			align:    diagram.AlignCenter,
			expected: geometry.Rect{X: 2, Y: 2, Width: 96, Height: 56},
		},
		{
			name:  "text size raises minimum width under scale",
			style: nil,
			state: &diagram.RenderState{
				X: 10, Y: 20, Width: 40, Height: 40, Scale: 2,
				Text: &diagram.TextMetrics{Size: 16},
			},
			align: diagram.AlignLeft,
			// minWidth = 16*2+20 = 52, spacing = 2*2 = 4 per side
			expected: geometry.Rect{X: 14, Y: 24, Width: 52, Height: 120},
		},
		{
			name:  "prior bounding box pulls position and grows size",
			style: nil,
			state: &diagram.RenderState{
				X: 10, Y: 20, Width: 100, Height: 40, Scale: 1,
				Text: &diagram.TextMetrics{
					BoundingBox: &geometry.Rect{X: 5, Y: 25, Width: 110, Height: 50},
				},
			},
			align:    diagram.AlignLeft,
			expected: geometry.Rect{X: 7, Y: 22, Width: 110, Height: 120},
		},
		{
			name: "explicit per-side spacing",
			style: diagram.Style{
				diagram.StyleSpacingLeft: "3",
				diagram.StyleSpacingTop:  "5",
			},
			state:    &diagram.RenderState{X: 0, Y: 0, Width: 100, Height: 40, Scale: 1},
			align:    diagram.AlignLeft,
			expected: geometry.Rect{X: 5, Y: 7, Width: 93, Height: 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := editorBounds(diagram.KindNode, tt.style, tt.state, tt.align)
			if got != tt.expected {
				t.Errorf("editorBounds() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestEditorBoundsEdge(t *testing.T) {
	tests := []struct {
		name     string
		style    diagram.Style
		state    *diagram.RenderState
		expected geometry.Rect
	}{
		{
			name:  "position from absolute offset",
			style: nil,
			state: &diagram.RenderState{
				X: 0, Y: 0, Width: 80, Height: 10, Scale: 1,
				AbsoluteOffset: geometry.Point{X: 50, Y: 60},
			},
			expected: geometry.Rect{X: 52, Y: 62, Width: 76, Height: 120},
		},
		{
			name:  "positive bounding box overrides offset",
			style: nil,
			state: &diagram.RenderState{
				X: 0, Y: 0, Width: 80, Height: 10, Scale: 1,
				AbsoluteOffset: geometry.Point{X: 50, Y: 60},
				Text: &diagram.TextMetrics{
					BoundingBox: &geometry.Rect{X: 30, Y: 40, Width: 70, Height: 15},
				},
			},
			expected: geometry.Rect{X: 32, Y: 42, Width: 70, Height: 120},
		},
		{
			name:  "non-positive bounding box coordinates keep the offset",
			style: nil,
			state: &diagram.RenderState{
				X: 0, Y: 0, Width: 80, Height: 10, Scale: 1,
				AbsoluteOffset: geometry.Point{X: 50, Y: 60},
				Text: &diagram.TextMetrics{
					BoundingBox: &geometry.Rect{X: 0, Y: -5, Width: 70, Height: 15},
				},
			},
			expected: geometry.Rect{X: 52, Y: 62, Width: 70, Height: 120},
		},
		{
			name: "label position styles do not apply to edges",
			style: diagram.Style{
				diagram.StyleLabelPosition:         "right",
				diagram.StyleVerticalLabelPosition: "bottom",
			},
			state: &diagram.RenderState{
				X: 0, Y: 0, Width: 80, Height: 10, Scale: 1,
				AbsoluteOffset: geometry.Point{X: 50, Y: 60},
			},
			expected: geometry.Rect{X: 52, Y: 62, Width: 76, Height: 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := editorBounds(diagram.KindEdge, tt.style, tt.state, diagram.AlignLeft)
			if got != tt.expected {
				t.Errorf("editorBounds() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestMinEditorSize(t *testing.T) {
	tests := []struct {
		name     string
		state    *diagram.RenderState
		align    string
		expected geometry.Point
	}{
		{
			name:     "no metrics, left aligned",
			state:    &diagram.RenderState{Scale: 1},
			align:    diagram.AlignLeft,
			expected: geometry.Point{X: 30, Y: 120},
		},
		{
			name:     "no metrics, centered",
			state:    &diagram.RenderState{Scale: 1},
			align:    diagram.AlignCenter,
			expected: geometry.Point{X: 30, Y: 40},
		},
		{
			name:     "small text size still floors at 30",
			state:    &diagram.RenderState{Scale: 1, Text: &diagram.TextMetrics{Size: 8}},
			align:    diagram.AlignLeft,
			expected: geometry.Point{X: 30, Y: 120},
		},
		{
			name:     "large text size wins",
			state:    &diagram.RenderState{Scale: 1, Text: &diagram.TextMetrics{Size: 24}},
			align:    diagram.AlignLeft,
			expected: geometry.Point{X: 44, Y: 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := minEditorSize(tt.state, tt.align)
			if got != tt.expected {
				t.Errorf("minEditorSize() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
