package overlay

import (
	"testing"
)

func TestCellMeasurer(t *testing.T) {
	m := NewCellMeasurer()

	tests := []struct {
		name       string
		text       string
		scale      float64
		expectedW  float64
		expectedH  float64
	}{
		{
			name:      "single line",
			text:      "hello",
			scale:     1,
			expectedW: 6,
			expectedH: 1,
		},
		{
			name:      "empty text still has cursor room",
			text:      "",
			scale:     1,
			expectedW: 1,
			expectedH: 1,
		},
		{
			name:      "widest line wins",
			text:      "a\nlonger line\nbb",
			scale:     1,
			expectedW: 12,
			expectedH: 3,
		},
		{
			name:      "carriage returns are ignored",
			text:      "ab\r\ncd",
			scale:     1,
			expectedW: 3,
			expectedH: 2,
		},
		{
			name:      "wide runes count double",
			text:      "日本語",
			scale:     1,
			expectedW: 7,
			expectedH: 1,
		},
		{
			name:      "scale multiplies both extents",
			text:      "ab\ncd",
			scale:     2,
			expectedW: 6,
			expectedH: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := m.Measure(tt.text, Font{}, tt.scale)
			if w != tt.expectedW || h != tt.expectedH {
				t.Errorf("Measure(%q) = (%v, %v), want (%v, %v)",
					tt.text, w, h, tt.expectedW, tt.expectedH)
			}
		})
	}
}
