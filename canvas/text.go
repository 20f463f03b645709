package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MeasureText returns the display width of a string in terminal cells.
func MeasureText(text string) int {
	return runewidth.StringWidth(text)
}

// MeasureBlock returns the display extent of multi-line text: the width of
// its widest line and its line count.
func MeasureBlock(text string) (width, height int) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// WrapText wraps text to fit within maxWidth at word boundaries. Words
// wider than maxWidth get a line of their own and overflow it.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		if currentWidth == 0 || currentWidth+1+wordWidth <= maxWidth {
			if currentWidth > 0 {
				current.WriteByte(' ')
				currentWidth++
			}
			current.WriteString(word)
			currentWidth += wordWidth
			continue
		}

		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(word)
		currentWidth = wordWidth
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
