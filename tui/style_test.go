package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected tcell.Color
	}{
		{"named black", "black", tcell.NewRGBColor(0, 0, 0)},
		{"named uppercase", "RED", tcell.NewRGBColor(0xcc, 0, 0)},
		{"hex", "#102030", tcell.NewRGBColor(0x10, 0x20, 0x30)},
		{"garbage falls back to default", "not-a-color", tcell.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.input); got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
