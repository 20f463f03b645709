package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"scrawl/overlay"
)

// namedColors maps the color names accepted in diagram styles to hex
// values, so named and hex colors go through the same conversion.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#cc0000",
	"green":   "#00a000",
	"yellow":  "#c0a000",
	"blue":    "#0060c0",
	"magenta": "#b000b0",
	"cyan":    "#00a0a0",
	"gray":    "#808080",
}

// ParseColor converts a style color (named or #rrggbb) to a tcell color.
// Unknown values fall back to the terminal default.
func ParseColor(s string) tcell.Color {
	hex, ok := namedColors[strings.ToLower(s)]
	if !ok {
		hex = s
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// fontStyle converts an overlay font to a tcell style.
func fontStyle(f overlay.Font) tcell.Style {
	st := tcell.StyleDefault.Foreground(ParseColor(f.Color))
	if f.Bold {
		st = st.Bold(true)
	}
	if f.Italic {
		st = st.Italic(true)
	}
	if f.Underline {
		st = st.Underline(true)
	}
	return st
}
