// Package canvas provides a rune-matrix drawing surface for the terminal
// renderer, plus text wrapping and measurement utilities.
package canvas

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// BoxStyle selects the border characters used by DrawBox.
type BoxStyle struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	Horizontal, Vertical    rune
}

// Box styles available to the renderer.
var (
	RoundedBox = BoxStyle{'╭', '╮', '╰', '╯', '─', '│'}
	SharpBox   = BoxStyle{'┌', '┐', '└', '┘', '─', '│'}
	DoubleBox  = BoxStyle{'╔', '╗', '╚', '╝', '═', '║'}
)

// Matrix is a rune matrix with high-level drawing primitives.
//
// Matrix is not safe for concurrent use. Coordinates are character cells
// with the origin at the top left, x increasing rightward and y downward.
type Matrix struct {
	cells  [][]rune
	width  int
	height int
}

// NewMatrix creates a canvas with the given dimensions, or returns an
// error if either is non-positive.
func NewMatrix(width, height int) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Matrix{cells: cells, width: width, height: height}, nil
}

// Size returns the width and height of the canvas.
func (m *Matrix) Size() (width, height int) {
	return m.width, m.height
}

// Get returns the rune at (x, y), or a space for out-of-bounds positions.
func (m *Matrix) Get(x, y int) rune {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return ' '
	}
	return m.cells[y][x]
}

// Set places a rune at (x, y).
func (m *Matrix) Set(x, y int, r rune) error {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return ErrOutOfBounds
	}
	m.cells[y][x] = r
	return nil
}

// Clear resets the canvas to all spaces.
func (m *Matrix) Clear() {
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = ' '
		}
	}
}

// DrawBox draws a rectangular border. Out-of-bounds cells are skipped so a
// box may hang off the canvas edge.
func (m *Matrix) DrawBox(x, y, width, height int, style BoxStyle) {
	if width < 2 || height < 2 {
		return
	}
	right := x + width - 1
	bottom := y + height - 1

	m.Set(x, y, style.TopLeft)
	m.Set(right, y, style.TopRight)
	m.Set(x, bottom, style.BottomLeft)
	m.Set(right, bottom, style.BottomRight)

	for cx := x + 1; cx < right; cx++ {
		m.Set(cx, y, style.Horizontal)
		m.Set(cx, bottom, style.Horizontal)
	}
	for cy := y + 1; cy < bottom; cy++ {
		m.Set(x, cy, style.Vertical)
		m.Set(right, cy, style.Vertical)
	}
}

// DrawText writes a single line of text starting at (x, y). Wide runes
// occupy two cells; the cell shadowed by a wide rune is left untouched.
func (m *Matrix) DrawText(x, y int, text string) {
	cx := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		m.Set(cx, y, r)
		cx += w
	}
}

// String returns the canvas content as newline-separated rows.
func (m *Matrix) String() string {
	var sb strings.Builder
	for y, row := range m.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String()
}
