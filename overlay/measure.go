package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Measurer sizes overlay text. Implementations must measure with the same
// presentation the surface renders with, so the overlay grows to exactly
// fit its content.
type Measurer interface {
	// Measure returns the width and height of text in overlay units at the
	// given scale.
	Measure(text string, font Font, scale float64) (w, h float64)
}

// CellMeasurer measures text in terminal cells: one cell per narrow rune,
// two per East Asian wide rune, one row per line. It is the measurement
// helper used for tcell-backed surfaces, where a cell is the overlay unit.
type CellMeasurer struct {
	// Pad is extra width added so the cursor has room after the last rune.
	Pad float64
}

// NewCellMeasurer returns a CellMeasurer with a one-cell cursor pad.
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{Pad: 1}
}

// Measure returns the display extent of text at the given scale. Carriage
// returns are ignored so DOS-style line endings measure like plain ones.
func (m *CellMeasurer) Measure(text string, _ Font, scale float64) (w, h float64) {
	text = strings.ReplaceAll(text, "\r", "")
	lines := strings.Split(text, "\n")

	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return (float64(widest) + m.Pad) * scale, float64(len(lines)) * scale
}
