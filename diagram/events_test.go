package diagram

import "testing"

func TestWatchDeliversChanges(t *testing.T) {
	d := &Diagram{}

	var changes []Change
	sub := d.Watch(func(c Change) { changes = append(changes, c) })
	defer sub.Cancel()

	ref := d.AddNode([]string{"a"})
	d.SetLabel(ref, "b", "trigger")
	d.Remove(ref)

	if len(changes) != 3 {
		t.Fatalf("got %d changes, want 3", len(changes))
	}
	if changes[0].Op != OpAdd || changes[0].Element != ref {
		t.Errorf("change 0 = %+v, want add of %+v", changes[0], ref)
	}
	if changes[1].Op != OpLabel || changes[1].Trigger != "trigger" {
		t.Errorf("change 1 = %+v, want label change with trigger", changes[1])
	}
	if changes[2].Op != OpRemove {
		t.Errorf("change 2 = %+v, want remove", changes[2])
	}
}

func TestSubscriptionCancel(t *testing.T) {
	d := &Diagram{}

	count := 0
	sub := d.Watch(func(Change) { count++ })

	d.AddNode([]string{"a"})
	sub.Cancel()
	sub.Cancel() // second cancel is a no-op
	d.AddNode([]string{"b"})

	if count != 1 {
		t.Errorf("callback ran %d times, want 1", count)
	}
}

func TestWatchersRunInRegistrationOrder(t *testing.T) {
	d := &Diagram{}

	var order []int
	d.Watch(func(Change) { order = append(order, 1) })
	d.Watch(func(Change) { order = append(order, 2) })
	d.Watch(func(Change) { order = append(order, 3) })

	d.AddNode(nil)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestRemoveNodeRemovesIncidentEdges(t *testing.T) {
	d := &Diagram{
		Nodes: []Node{{ID: 1}, {ID: 2}, {ID: 3}},
		Edges: []Edge{
			{ID: 1, From: 1, To: 2},
			{ID: 2, From: 2, To: 3},
			{ID: 3, From: 3, To: 1},
		},
	}

	var removed []ElementRef
	d.Watch(func(c Change) {
		if c.Op == OpRemove {
			removed = append(removed, c.Element)
		}
	})

	d.Remove(NodeRef(1))

	if d.FindNode(1) != nil {
		t.Error("node 1 should be gone")
	}
	if len(d.Edges) != 1 || d.Edges[0].ID != 2 {
		t.Errorf("edges = %+v, want only edge 2", d.Edges)
	}
	// Two edges plus the node itself.
	if len(removed) != 3 {
		t.Errorf("got %d remove notifications, want 3", len(removed))
	}
	if removed[len(removed)-1] != NodeRef(1) {
		t.Error("node removal should be notified after its edges")
	}
}
