package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"scrawl/geometry"
	"scrawl/overlay"
)

// TextArea is the tcell-backed overlay surface: a bordered, multi-line
// text box drawn over the diagram while a label is being edited. It
// implements overlay.Surface.
type TextArea struct {
	buffer    []rune
	cursorPos int

	bounds   geometry.Rect
	style    tcell.Style
	attached bool
	focused  bool

	// allSelected means the next inserted rune replaces the whole
	// content, the way seeded text behaves right after focus.
	allSelected bool
}

// NewTextArea returns a detached, empty text area.
func NewTextArea() *TextArea {
	return &TextArea{style: tcell.StyleDefault}
}

// Attach makes the text area visible.
func (t *TextArea) Attach() { t.attached = true }

// Detach hides the text area and drops its content.
func (t *TextArea) Detach() {
	t.attached = false
	t.buffer = nil
	t.cursorPos = 0
	t.allSelected = false
	t.bounds = geometry.Rect{}
}

// Attached reports whether the text area is visible.
func (t *TextArea) Attached() bool { return t.attached }

// SetBounds positions the text area, in overlay units (cells).
func (t *TextArea) SetBounds(b geometry.Rect) { t.bounds = b }

// SetFont applies the overlay presentation.
func (t *TextArea) SetFont(f overlay.Font) { t.style = fontStyle(f) }

// SetText replaces the content and moves the cursor to the end.
func (t *TextArea) SetText(text string) {
	t.buffer = []rune(text)
	t.cursorPos = len(t.buffer)
}

// Text returns the current content.
func (t *TextArea) Text() string { return string(t.buffer) }

// Focus gives the text area the cursor. With selectAll the seeded content
// is marked selected, so the next inserted rune replaces it.
func (t *TextArea) Focus(selectAll bool) {
	t.focused = true
	t.allSelected = selectAll && len(t.buffer) > 0
	t.cursorPos = len(t.buffer)
}

// Blur removes focus.
func (t *TextArea) Blur() {
	t.focused = false
	t.allSelected = false
}

// InsertRune inserts r at the cursor, replacing the selection if the
// content is still marked selected.
func (t *TextArea) InsertRune(r rune) {
	if t.allSelected {
		t.buffer = t.buffer[:0]
		t.cursorPos = 0
		t.allSelected = false
	}
	t.buffer = append(t.buffer[:t.cursorPos], append([]rune{r}, t.buffer[t.cursorPos:]...)...)
	t.cursorPos++
}

// InsertNewline starts a new line at the cursor.
func (t *TextArea) InsertNewline() {
	t.InsertRune('\n')
}

// Backspace deletes the rune before the cursor, or the whole selection.
func (t *TextArea) Backspace() {
	if t.allSelected {
		t.buffer = t.buffer[:0]
		t.cursorPos = 0
		t.allSelected = false
		return
	}
	if t.cursorPos > 0 {
		t.buffer = append(t.buffer[:t.cursorPos-1], t.buffer[t.cursorPos:]...)
		t.cursorPos--
	}
}

// DeleteWordBackward deletes the previous word.
func (t *TextArea) DeleteWordBackward() {
	if t.cursorPos == 0 {
		return
	}
	t.allSelected = false

	start := t.cursorPos - 1
	for start >= 0 && t.buffer[start] == ' ' {
		start--
	}
	for start >= 0 && t.buffer[start] != ' ' && t.buffer[start] != '\n' {
		start--
	}
	start++

	if start < t.cursorPos {
		t.buffer = append(t.buffer[:start], t.buffer[t.cursorPos:]...)
		t.cursorPos = start
	}
}

// DeleteToLineStart deletes from the cursor to the start of the line.
func (t *TextArea) DeleteToLineStart() {
	t.allSelected = false
	start := t.lineStart()
	if start < t.cursorPos {
		t.buffer = append(t.buffer[:start], t.buffer[t.cursorPos:]...)
		t.cursorPos = start
	}
}

// DeleteToLineEnd deletes from the cursor to the end of the line.
func (t *TextArea) DeleteToLineEnd() {
	t.allSelected = false
	end := t.lineEnd()
	if end > t.cursorPos {
		t.buffer = append(t.buffer[:t.cursorPos], t.buffer[end:]...)
	}
}

// MoveCursor moves the cursor by delta runes, clamped to the content.
func (t *TextArea) MoveCursor(delta int) {
	t.allSelected = false
	t.cursorPos = geometry.Clamp(t.cursorPos+delta, 0, len(t.buffer))
}

// MoveCursorLineStart moves the cursor to the start of the current line.
func (t *TextArea) MoveCursorLineStart() {
	t.allSelected = false
	t.cursorPos = t.lineStart()
}

// MoveCursorLineEnd moves the cursor to the end of the current line.
func (t *TextArea) MoveCursorLineEnd() {
	t.allSelected = false
	t.cursorPos = t.lineEnd()
}

// MoveCursorVertical moves the cursor up or down a line, keeping the
// column where possible.
func (t *TextArea) MoveCursorVertical(delta int) {
	t.allSelected = false
	line, col := t.cursorLineCol()
	lines := t.lines()
	target := geometry.Clamp(line+delta, 0, len(lines)-1)
	if target == line {
		return
	}
	col = geometry.Min(col, len(lines[target]))

	pos := 0
	for i := 0; i < target; i++ {
		pos += len(lines[i]) + 1
	}
	t.cursorPos = pos + col
}

func (t *TextArea) lineStart() int {
	start := t.cursorPos
	for start > 0 && t.buffer[start-1] != '\n' {
		start--
	}
	return start
}

func (t *TextArea) lineEnd() int {
	end := t.cursorPos
	for end < len(t.buffer) && t.buffer[end] != '\n' {
		end++
	}
	return end
}

func (t *TextArea) lines() [][]rune {
	lines := [][]rune{{}}
	for _, r := range t.buffer {
		if r == '\n' {
			lines = append(lines, []rune{})
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], r)
	}
	return lines
}

// cursorLineCol returns the cursor position as line and column.
func (t *TextArea) cursorLineCol() (line, col int) {
	for i := 0; i < t.cursorPos && i < len(t.buffer); i++ {
		if t.buffer[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// Draw renders the text area onto the screen, clamped to the viewport.
// The overlay's minimum bounds are far taller than a terminal needs, so
// the drawn box shrinks to its content.
func (t *TextArea) Draw(screen tcell.Screen) {
	if !t.attached {
		return
	}
	sw, sh := screen.Size()

	lines := strings.Split(strings.ReplaceAll(t.Text(), "\r", ""), "\n")
	contentW := 0
	for _, line := range lines {
		contentW = geometry.Max(contentW, runewidth.StringWidth(line))
	}

	w := geometry.Clamp(geometry.Max(int(t.bounds.Width), contentW+3), 5, sw)
	h := geometry.Clamp(len(lines)+2, 3, sh)
	x := geometry.Clamp(int(t.bounds.X)-1, 0, geometry.Max(0, sw-w))
	y := geometry.Clamp(int(t.bounds.Y)-1, 0, geometry.Max(0, sh-h))

	boxStyle := t.style.Reverse(t.allSelected)
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			screen.SetContent(cx, cy, ' ', nil, t.style)
		}
	}
	drawBorder(screen, x, y, w, h, t.style)

	for i, line := range lines {
		if i >= h-2 {
			break
		}
		cx := x + 1
		for _, r := range line {
			if cx >= x+w-1 {
				break
			}
			screen.SetContent(cx, y+1+i, r, nil, boxStyle)
			cx += runewidth.RuneWidth(r)
		}
	}

	if t.focused {
		line, col := t.cursorLineCol()
		screen.ShowCursor(x+1+col, y+1+line)
	}
}

func drawBorder(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for cx := x + 1; cx < x+w-1; cx++ {
		screen.SetContent(cx, y, tcell.RuneHLine, nil, style)
		screen.SetContent(cx, y+h-1, tcell.RuneHLine, nil, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		screen.SetContent(x, cy, tcell.RuneVLine, nil, style)
		screen.SetContent(x+w-1, cy, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}
