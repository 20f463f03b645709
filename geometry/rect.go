package geometry

// Point is a 2D coordinate in overlay units. Unlike the integer cell
// coordinates used by the layout engine, overlay geometry is computed in
// float64 so that scaling and spacing arithmetic stay exact.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in overlay units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}
