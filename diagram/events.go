package diagram

// ChangeOp classifies a model mutation.
type ChangeOp int

const (
	OpAdd ChangeOp = iota
	OpRemove
	OpLabel
	OpGeometry
)

// String returns the string representation of a ChangeOp.
func (op ChangeOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpLabel:
		return "label"
	case OpGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// Change describes a single model mutation delivered to watchers.
type Change struct {
	Op      ChangeOp
	Element ElementRef
	Trigger any // input event that caused the change, if any
}

// Subscription is the handle returned by Watch. Cancelling a subscription
// detaches its callback; cancelling twice is a no-op.
type Subscription struct {
	set *watcherSet
	id  int
}

// Cancel detaches the subscription's callback from the diagram.
func (s *Subscription) Cancel() {
	if s == nil || s.set == nil {
		return
	}
	delete(s.set.fns, s.id)
	s.set = nil
}

type watcherSet struct {
	fns    map[int]func(Change)
	nextID int
}

// Watch registers fn to be called on every model mutation, in registration
// order, and returns a handle that detaches it. Callbacks run synchronously
// on the mutating call; they must not mutate the diagram reentrantly.
func (d *Diagram) Watch(fn func(Change)) *Subscription {
	if d.watchers == nil {
		d.watchers = &watcherSet{fns: make(map[int]func(Change))}
	}
	id := d.watchers.nextID
	d.watchers.nextID++
	d.watchers.fns[id] = fn
	return &Subscription{set: d.watchers, id: id}
}

func (d *Diagram) notify(c Change) {
	if d.watchers == nil {
		return
	}
	// Iterate in registration order so delivery is deterministic.
	for id := 0; id < d.watchers.nextID; id++ {
		if fn, ok := d.watchers.fns[id]; ok {
			fn(c)
		}
	}
}

// NotifyGeometry reports a layout change for el to watchers. The layout
// engine owns node geometry, so the mutation itself happens outside the
// model's methods.
func (d *Diagram) NotifyGeometry(el ElementRef) {
	d.notify(Change{Op: OpGeometry, Element: el})
}
