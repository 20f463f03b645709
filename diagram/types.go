// Package diagram contains the diagram model: nodes, edges, their styles
// and labels, and the change notifications the label overlay subscribes to.
package diagram

import (
	"fmt"
	"strings"
)

// ElementKind distinguishes the two editable element classes.
type ElementKind int

const (
	KindNode ElementKind = iota
	KindEdge
)

// String returns the string representation of an ElementKind.
func (k ElementKind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// ElementRef identifies a node or edge in a diagram. Refs are comparable
// and safe to hold across model mutations; a ref to a deleted element
// simply stops resolving.
type ElementRef struct {
	Kind ElementKind
	ID   int
}

// NodeRef returns a ref to the node with the given ID.
func NodeRef(id int) ElementRef { return ElementRef{Kind: KindNode, ID: id} }

// EdgeRef returns a ref to the edge with the given ID.
func EdgeRef(id int) ElementRef { return ElementRef{Kind: KindEdge, ID: id} }

// Node represents a box in the diagram.
type Node struct {
	ID    int      `json:"id"`
	Text  []string `json:"text"`
	Style Style    `json:"style,omitempty"`

	// Set by the layout engine, in character cells.
	X      int `json:"-"`
	Y      int `json:"-"`
	Width  int `json:"-"`
	Height int `json:"-"`
}

// Label returns the node text as a single string with newline separators.
func (n *Node) Label() string {
	return strings.Join(n.Text, "\n")
}

// Edge represents a directed, optionally labelled connection between nodes.
type Edge struct {
	ID    int    `json:"id"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label,omitempty"`
	Style Style  `json:"style,omitempty"`
}

// Diagram is a complete diagram with nodes and edges.
//
// Diagram is not safe for concurrent use: like the rest of the model it is
// owned by the host UI's single event loop.
type Diagram struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	watchers *watcherSet
}

// FindNode returns the node with the given ID, or nil.
func (d *Diagram) FindNode(id int) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// FindEdge returns the edge with the given ID, or nil.
func (d *Diagram) FindEdge(id int) *Edge {
	for i := range d.Edges {
		if d.Edges[i].ID == id {
			return &d.Edges[i]
		}
	}
	return nil
}

// Exists reports whether el resolves to a live element.
func (d *Diagram) Exists(el ElementRef) bool {
	switch el.Kind {
	case KindNode:
		return d.FindNode(el.ID) != nil
	case KindEdge:
		return d.FindEdge(el.ID) != nil
	default:
		return false
	}
}

// Label returns the current label text of el. The second return value is
// false if el does not resolve.
func (d *Diagram) Label(el ElementRef) (string, bool) {
	switch el.Kind {
	case KindNode:
		if n := d.FindNode(el.ID); n != nil {
			return n.Label(), true
		}
	case KindEdge:
		if e := d.FindEdge(el.ID); e != nil {
			return e.Label, true
		}
	}
	return "", false
}

// StyleOf returns the style bag of el. A nil style is returned for an
// unresolvable ref; Style accessors treat nil as all-defaults.
func (d *Diagram) StyleOf(el ElementRef) Style {
	switch el.Kind {
	case KindNode:
		if n := d.FindNode(el.ID); n != nil {
			return n.Style
		}
	case KindEdge:
		if e := d.FindEdge(el.ID); e != nil {
			return e.Style
		}
	}
	return nil
}

// SetLabel stores text as the label of el and notifies watchers. Node
// labels are split on newlines into text rows; trailing blank rows are
// dropped. Trigger carries the input event that caused the edit, if any,
// through to change watchers.
func (d *Diagram) SetLabel(el ElementRef, text string, trigger any) {
	switch el.Kind {
	case KindNode:
		n := d.FindNode(el.ID)
		if n == nil {
			return
		}
		lines := strings.Split(text, "\n")
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		n.Text = lines
	case KindEdge:
		e := d.FindEdge(el.ID)
		if e == nil {
			return
		}
		e.Label = strings.TrimSpace(text)
	default:
		return
	}
	d.notify(Change{Op: OpLabel, Element: el, Trigger: trigger})
}

// AddNode appends a node with the given text rows and returns its ref.
func (d *Diagram) AddNode(text []string) ElementRef {
	id := d.nextNodeID()
	d.Nodes = append(d.Nodes, Node{ID: id, Text: text})
	ref := NodeRef(id)
	d.notify(Change{Op: OpAdd, Element: ref})
	return ref
}

// AddEdge appends an edge between two nodes and returns its ref.
func (d *Diagram) AddEdge(from, to int, label string) ElementRef {
	id := d.nextEdgeID()
	d.Edges = append(d.Edges, Edge{ID: id, From: from, To: to, Label: label})
	ref := EdgeRef(id)
	d.notify(Change{Op: OpAdd, Element: ref})
	return ref
}

// Remove deletes el from the diagram. Removing a node also removes its
// incident edges, each with its own change notification.
func (d *Diagram) Remove(el ElementRef) {
	switch el.Kind {
	case KindNode:
		n := d.FindNode(el.ID)
		if n == nil {
			return
		}
		for i := 0; i < len(d.Edges); {
			e := d.Edges[i]
			if e.From == el.ID || e.To == el.ID {
				d.Edges = append(d.Edges[:i], d.Edges[i+1:]...)
				d.notify(Change{Op: OpRemove, Element: EdgeRef(e.ID)})
				continue
			}
			i++
		}
		for i := range d.Nodes {
			if d.Nodes[i].ID == el.ID {
				d.Nodes = append(d.Nodes[:i], d.Nodes[i+1:]...)
				break
			}
		}
	case KindEdge:
		e := d.FindEdge(el.ID)
		if e == nil {
			return
		}
		for i := range d.Edges {
			if d.Edges[i].ID == el.ID {
				d.Edges = append(d.Edges[:i], d.Edges[i+1:]...)
				break
			}
		}
	default:
		return
	}
	d.notify(Change{Op: OpRemove, Element: el})
}

func (d *Diagram) nextNodeID() int {
	id := 0
	for _, n := range d.Nodes {
		if n.ID >= id {
			id = n.ID + 1
		}
	}
	return id
}

func (d *Diagram) nextEdgeID() int {
	id := 0
	for _, e := range d.Edges {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// Validate checks structural consistency: unique IDs and edges that
// reference existing nodes.
func (d *Diagram) Validate() error {
	nodeIDs := make(map[int]bool)
	for _, n := range d.Nodes {
		if nodeIDs[n.ID] {
			return fmt.Errorf("duplicate node ID: %d", n.ID)
		}
		nodeIDs[n.ID] = true
	}
	edgeIDs := make(map[int]bool)
	for _, e := range d.Edges {
		if edgeIDs[e.ID] {
			return fmt.Errorf("duplicate edge ID: %d", e.ID)
		}
		edgeIDs[e.ID] = true
		if !nodeIDs[e.From] {
			return fmt.Errorf("edge %d references non-existent 'from' node: %d", e.ID, e.From)
		}
		if !nodeIDs[e.To] {
			return fmt.Errorf("edge %d references non-existent 'to' node: %d", e.ID, e.To)
		}
	}
	return nil
}
