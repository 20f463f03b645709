package diagram

import "strconv"

// Style key names. Values are stored as strings so diagram files stay
// hand-editable, the same way node hints work in the JSON format.
const (
	StyleFontSize      = "fontSize"
	StyleFontFamily    = "fontFamily"
	StyleFontColor     = "fontColor"
	StyleBold          = "bold"
	StyleItalic        = "italic"
	StyleUnderline     = "underline"
	StyleAlign         = "align"
	StyleSpacing       = "spacing"
	StyleSpacingTop    = "spacingTop"
	StyleSpacingRight  = "spacingRight"
	StyleSpacingBottom = "spacingBottom"
	StyleSpacingLeft   = "spacingLeft"
	StyleLabelPosition = "labelPosition"         // left, center, right
	StyleVerticalLabelPosition = "verticalLabelPosition" // top, middle, bottom
)

// Alignment and label-position values.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	AlignTop    = "top"
	AlignMiddle = "middle"
	AlignBottom = "bottom"
)

// Style defaults.
const (
	DefaultFontSize   = 11.0
	DefaultFontFamily = "Arial,Helvetica"
	DefaultFontColor  = "black"
	DefaultSpacing    = 2.0
)

// Style is a bag of named presentation properties. A nil Style is valid
// and yields defaults from every accessor.
type Style map[string]string

func (s Style) float(key string, def float64) float64 {
	v, ok := s[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func (s Style) str(key, def string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return def
}

func (s Style) flag(key string) bool {
	switch s[key] {
	case "1", "true", "yes":
		return true
	}
	return false
}

// FontSize returns the label font size in points.
func (s Style) FontSize() float64 { return s.float(StyleFontSize, DefaultFontSize) }

// FontFamily returns the label font family list.
func (s Style) FontFamily() string { return s.str(StyleFontFamily, DefaultFontFamily) }

// FontColor returns the label color.
func (s Style) FontColor() string { return s.str(StyleFontColor, DefaultFontColor) }

// Bold reports whether the label is bold.
func (s Style) Bold() bool { return s.flag(StyleBold) }

// Italic reports whether the label is italic.
func (s Style) Italic() bool { return s.flag(StyleItalic) }

// Underline reports whether the label is underlined.
func (s Style) Underline() bool { return s.flag(StyleUnderline) }

// Align returns the element's own label alignment. Note that the overlay
// ignores this and always edits left-aligned.
func (s Style) Align() string { return s.str(StyleAlign, AlignCenter) }

// Spacing returns the base label spacing applied to all four sides.
func (s Style) Spacing() float64 { return s.float(StyleSpacing, DefaultSpacing) }

// SpacingTop returns the extra top spacing.
func (s Style) SpacingTop() float64 { return s.float(StyleSpacingTop, 0) }

// SpacingRight returns the extra right spacing.
func (s Style) SpacingRight() float64 { return s.float(StyleSpacingRight, 0) }

// SpacingBottom returns the extra bottom spacing.
func (s Style) SpacingBottom() float64 { return s.float(StyleSpacingBottom, 0) }

// SpacingLeft returns the extra left spacing.
func (s Style) SpacingLeft() float64 { return s.float(StyleSpacingLeft, 0) }

// LabelPosition returns the horizontal label position relative to the
// element: left, center or right.
func (s Style) LabelPosition() string { return s.str(StyleLabelPosition, AlignCenter) }

// VerticalLabelPosition returns the vertical label position relative to
// the element: top, middle or bottom.
func (s Style) VerticalLabelPosition() string {
	return s.str(StyleVerticalLabelPosition, AlignMiddle)
}
