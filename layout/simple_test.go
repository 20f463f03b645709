package layout

import (
	"testing"

	"scrawl/diagram"
)

func TestApplySizesNodesFromText(t *testing.T) {
	d := &diagram.Diagram{
		Nodes: []diagram.Node{
			{ID: 1, Text: []string{"hello"}},
			{ID: 2, Text: []string{"a", "bb", "ccc"}},
		},
	}

	NewSimple().Apply(d)

	n1 := d.FindNode(1)
	if n1.Width != 9 || n1.Height != 3 {
		t.Errorf("node 1 = %dx%d, want 9x3", n1.Width, n1.Height)
	}
	n2 := d.FindNode(2)
	if n2.Width != 7 || n2.Height != 5 {
		t.Errorf("node 2 = %dx%d, want 7x5", n2.Width, n2.Height)
	}
}

func TestApplyPlacesDownstreamNodesRight(t *testing.T) {
	d := &diagram.Diagram{
		Nodes: []diagram.Node{
			{ID: 1, Text: []string{"root"}},
			{ID: 2, Text: []string{"mid"}},
			{ID: 3, Text: []string{"leaf"}},
		},
		Edges: []diagram.Edge{
			{ID: 1, From: 1, To: 2},
			{ID: 2, From: 2, To: 3},
		},
	}

	NewSimple().Apply(d)

	if !(d.FindNode(1).X < d.FindNode(2).X && d.FindNode(2).X < d.FindNode(3).X) {
		t.Errorf("columns not left to right: x = %d, %d, %d",
			d.FindNode(1).X, d.FindNode(2).X, d.FindNode(3).X)
	}
}

func TestApplySurvivesCycles(t *testing.T) {
	d := &diagram.Diagram{
		Nodes: []diagram.Node{
			{ID: 1, Text: []string{"a"}},
			{ID: 2, Text: []string{"b"}},
		},
		Edges: []diagram.Edge{
			{ID: 1, From: 1, To: 2},
			{ID: 2, From: 2, To: 1},
		},
	}

	NewSimple().Apply(d) // must terminate

	if d.FindNode(1).Width == 0 || d.FindNode(2).Width == 0 {
		t.Error("nodes not sized")
	}
}

func TestApplyEmptyDiagram(t *testing.T) {
	NewSimple().Apply(&diagram.Diagram{})
}
