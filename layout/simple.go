// Package layout positions diagram nodes in character-cell space so the
// view can resolve render states for them.
package layout

import (
	"sort"

	"scrawl/canvas"
	"scrawl/diagram"
	"scrawl/geometry"
)

// Simple arranges nodes left to right in columns by their distance from
// root nodes (nodes with no incoming edges).
type Simple struct {
	HorizontalSpacing int
	VerticalSpacing   int
	MinNodeWidth      int
	MinNodeHeight     int
	MaxNodeWidth      int
}

// NewSimple returns a Simple layout with the default spacing.
func NewSimple() *Simple {
	return &Simple{
		HorizontalSpacing: 10,
		VerticalSpacing:   2,
		MinNodeWidth:      5,
		MinNodeHeight:     3,
		MaxNodeWidth:      40,
	}
}

// Apply sets X, Y, Width and Height on every node in d, in place.
func (s *Simple) Apply(d *diagram.Diagram) {
	if len(d.Nodes) == 0 {
		return
	}

	for i := range d.Nodes {
		s.sizeNode(&d.Nodes[i])
	}

	columns := s.assignColumns(d)

	x := 1
	for _, column := range columns {
		colWidth := 0
		y := 1
		for _, idx := range column {
			n := &d.Nodes[idx]
			n.X = x
			n.Y = y
			y += n.Height + s.VerticalSpacing
			colWidth = geometry.Max(colWidth, n.Width)
		}
		x += colWidth + s.HorizontalSpacing
	}
}

// sizeNode computes a node's box from its text extents.
func (s *Simple) sizeNode(n *diagram.Node) {
	width := 0
	for _, line := range n.Text {
		width = geometry.Max(width, canvas.MeasureText(line))
	}
	width = geometry.Min(width, s.MaxNodeWidth)

	// One cell of border plus one of padding on each side.
	n.Width = geometry.Max(s.MinNodeWidth, width+4)
	n.Height = geometry.Max(s.MinNodeHeight, len(n.Text)+2)
}

// assignColumns groups node indices by their longest distance from a root.
func (s *Simple) assignColumns(d *diagram.Diagram) [][]int {
	indexByID := make(map[int]int, len(d.Nodes))
	for i, n := range d.Nodes {
		indexByID[n.ID] = i
	}

	depth := make([]int, len(d.Nodes))
	// Relax edges repeatedly; diagrams are small and may contain cycles,
	// so cap the passes at the node count.
	for pass := 0; pass < len(d.Nodes); pass++ {
		changed := false
		for _, e := range d.Edges {
			from, okF := indexByID[e.From]
			to, okT := indexByID[e.To]
			if !okF || !okT || from == to {
				continue
			}
			if depth[to] < depth[from]+1 {
				depth[to] = depth[from] + 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	maxDepth := 0
	for _, dd := range depth {
		maxDepth = geometry.Max(maxDepth, dd)
	}

	columns := make([][]int, maxDepth+1)
	for i := range d.Nodes {
		columns[depth[i]] = append(columns[depth[i]], i)
	}
	for _, column := range columns {
		sort.Slice(column, func(a, b int) bool {
			return d.Nodes[column[a]].ID < d.Nodes[column[b]].ID
		})
	}
	return columns
}
