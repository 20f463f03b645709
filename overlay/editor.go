// Package overlay implements the in-place label editor for diagram
// elements: a single transient text-editing session positioned over a node
// or edge, sized to fit its content, committed or discarded depending on
// how editing ends.
package overlay

import (
	"strings"

	"github.com/rs/zerolog/log"

	"scrawl/diagram"
	"scrawl/geometry"
)

// Model is the slice of the diagram model the editor needs: label and
// style lookup, the label mutation entry point, and change notifications.
// *diagram.Diagram satisfies it.
type Model interface {
	Label(el diagram.ElementRef) (string, bool)
	StyleOf(el diagram.ElementRef) diagram.Style
	SetLabel(el diagram.ElementRef, text string, trigger any)
	Watch(fn func(diagram.Change)) *diagram.Subscription
}

// View resolves elements to their on-screen render state and controls
// visibility of the live label while it is being edited.
type View interface {
	diagram.StateProvider
	SetLabelHidden(el diagram.ElementRef, hidden bool)
}

// Surface is the text-input overlay the host provides: a textarea that can
// be attached over the diagram, styled, filled and focused.
type Surface interface {
	Attach()
	Detach()
	SetBounds(geometry.Rect)
	SetFont(Font)
	SetText(string)
	Text() string
	Focus(selectAll bool)
	Blur()
}

// Scheduler defers a callback until after the current input-handling turn
// completes, on the same event loop. Deferred callbacks are not cancelable;
// the editor guards them with a session generation check instead.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Defer calls f.
func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// Font is the presentation the overlay is styled with, derived from the
// edited element's style. The measurement helper uses the same values so
// measured text matches what the surface shows.
type Font struct {
	Size      float64
	Family    string
	Color     string
	Bold      bool
	Italic    bool
	Underline bool
	Align     string
}

// Options are the editor's configuration toggles.
type Options struct {
	// AutoSize grows the overlay to fit content while typing.
	AutoSize bool
	// SelectText selects the seeded text when focus is acquired.
	SelectText bool
	// HideLabel hides the element's live label rendering for the duration
	// of the session.
	HideLabel bool
	// Placeholder is shown when editing an element with an empty label and
	// cleared on the first modifying keystroke.
	Placeholder string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		AutoSize:   true,
		SelectText: true,
		HideLabel:  true,
	}
}

// session is the state of one editing transaction. At most one exists per
// editor at a time.
type session struct {
	element      diagram.ElementRef
	trigger      any
	modified     bool
	clearPending bool // placeholder still seeded, cleared on first input
	font         Font
	bounds       *geometry.Rect
}

// Editor manages a single in-place label editing session over a diagram
// surface. All methods must be called from the host UI's event loop; the
// editor is not safe for concurrent use.
type Editor struct {
	model     Model
	view      View
	surface   Surface
	scheduler Scheduler
	opts      Options

	sub      *diagram.Subscription
	measurer Measurer
	session  *session

	// generation invalidates deferred callbacks scheduled for earlier
	// sessions. Bumped on every session start and stop.
	generation uint64

	destroyed bool
}

// New creates an editor bound to the given collaborators and subscribes to
// model changes so a deleted element cancels its session.
func New(model Model, view View, surface Surface, scheduler Scheduler, opts Options) *Editor {
	e := &Editor{
		model:     model,
		view:      view,
		surface:   surface,
		scheduler: scheduler,
		opts:      opts,
	}
	e.sub = model.Watch(e.onChange)
	return e
}

// StartEditing begins an editing session for el. If a session is already
// active it is stopped first through the normal stop path, committing its
// pending edit. If el has no render state or does not resolve in the
// model, no session starts.
func (e *Editor) StartEditing(el diagram.ElementRef, trigger any) {
	if e.destroyed {
		return
	}
	if e.session != nil {
		e.StopEditing(false)
	}

	state := e.view.State(el)
	if state == nil {
		log.Debug().Stringer("kind", el.Kind).Int("id", el.ID).
			Msg("no render state for element, not starting edit")
		return
	}
	label, ok := e.model.Label(el)
	if !ok {
		return
	}

	style := e.model.StyleOf(el)
	font := fontFor(style)
	bounds := editorBounds(el.Kind, style, state, font.Align)

	s := &session{
		element: el,
		trigger: trigger,
		font:    font,
		bounds:  &bounds,
	}
	if label == "" {
		s.clearPending = true
		label = e.opts.Placeholder
	}
	e.session = s
	e.generation++

	if e.opts.HideLabel {
		e.view.SetLabelHidden(el, true)
	}
	e.measurer = NewCellMeasurer()

	e.surface.SetFont(font)
	e.surface.SetBounds(bounds)
	e.surface.SetText(label)
	e.surface.Attach()
	e.surface.Focus(e.opts.SelectText)

	if e.opts.AutoSize {
		e.scheduleResize()
	}
	log.Debug().Stringer("kind", el.Kind).Int("id", el.ID).Msg("editing started")
}

// StopEditing ends the active session. With cancel false a modified
// session commits its text through the model's label mutation entry point,
// with carriage returns stripped; with cancel true the edit is discarded.
// A no-op when no session is active.
func (e *Editor) StopEditing(cancel bool) {
	s := e.session
	if s == nil {
		return
	}
	e.session = nil
	e.generation++
	e.measurer = nil

	if e.opts.HideLabel {
		e.view.SetLabelHidden(s.element, false)
	}

	if !cancel && s.modified {
		text := strings.ReplaceAll(e.surface.Text(), "\r", "")
		if s.clearPending && text == e.opts.Placeholder {
			// The placeholder was never cleared, so the label is empty.
			text = ""
		}
		e.model.SetLabel(s.element, text, s.trigger)
	}

	e.surface.Blur()
	e.surface.Detach()
	log.Debug().Bool("cancel", cancel).Msg("editing stopped")
}

// InputReceived records a modifying keystroke. The host calls this before
// applying the keystroke to the surface: the first call of a session
// started on an empty label clears the seeded placeholder, so the
// keystroke lands in empty content.
func (e *Editor) InputReceived() {
	s := e.session
	if s == nil {
		return
	}
	if s.clearPending {
		s.clearPending = false
		e.surface.SetText("")
	}
	s.modified = true
	if e.opts.AutoSize {
		e.scheduleResize()
	}
}

// Resize recomputes the overlay size from the current surface text. If the
// edited element's render state has disappeared, the session is canceled
// instead. A no-op when no session or no measurement helper is active.
func (e *Editor) Resize() {
	s := e.session
	if s == nil || e.measurer == nil {
		return
	}
	state := e.view.State(s.element)
	if state == nil {
		// Edited element vanished under the editor.
		e.StopEditing(true)
		return
	}

	w, h := e.measurer.Measure(e.surface.Text(), s.font, state.Scale)
	minSize := minEditorSize(state, s.font.Align)
	w = max(w, minSize.X)
	h = max(h, minSize.Y)

	switch {
	case s.element.Kind == diagram.KindEdge && s.bounds == nil:
		// No position has been established yet: update size only.
		s.bounds = &geometry.Rect{Width: w, Height: h}
	case s.element.Kind == diagram.KindEdge:
		s.bounds.Width = w
		s.bounds.Height = h
	default:
		style := e.model.StyleOf(s.element)
		b := editorBounds(s.element.Kind, style, state, s.font.Align)
		b.Width = max(b.Width, w)
		b.Height = max(b.Height, h)
		s.bounds = &b
	}
	e.surface.SetBounds(*s.bounds)
}

// IsModified reports whether the active session's text has been modified.
// False when no session is active.
func (e *Editor) IsModified() bool {
	return e.session != nil && e.session.modified
}

// SetModified overrides the active session's modified flag.
func (e *Editor) SetModified(modified bool) {
	if e.session != nil {
		e.session.modified = modified
	}
}

// EditingElement returns the element of the active session, if any.
func (e *Editor) EditingElement() (diagram.ElementRef, bool) {
	if e.session == nil {
		return diagram.ElementRef{}, false
	}
	return e.session.element, true
}

// Bounds returns the overlay's current bounds, if a session is active and
// a position has been established.
func (e *Editor) Bounds() (geometry.Rect, bool) {
	if e.session == nil || e.session.bounds == nil {
		return geometry.Rect{}, false
	}
	return *e.session.bounds, true
}

// Destroy cancels any active session and detaches the editor from the
// model's change notifications. Idempotent; all operations on a destroyed
// editor are no-ops.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.StopEditing(true)
	e.destroyed = true
	e.sub.Cancel()
}

// onChange reacts to model mutations while a session is active: if the
// edited element no longer resolves to a render state the session is
// canceled, otherwise the overlay is resized after the current turn.
func (e *Editor) onChange(diagram.Change) {
	s := e.session
	if s == nil {
		return
	}
	if e.view.State(s.element) == nil {
		e.StopEditing(true)
		return
	}
	if e.opts.AutoSize {
		e.scheduleResize()
	}
}

// scheduleResize defers a resize to after the current input-handling turn.
// The session generation is captured at scheduling time; a stale callback
// is a no-op.
func (e *Editor) scheduleResize() {
	if e.scheduler == nil {
		return
	}
	gen := e.generation
	e.scheduler.Defer(func() {
		if e.destroyed || e.session == nil || e.generation != gen {
			return
		}
		e.Resize()
	})
}

// fontFor derives the overlay presentation from an element style. The
// overlay always edits left-aligned regardless of the element's own
// alignment, so the cursor sits where typing happens.
func fontFor(s diagram.Style) Font {
	return Font{
		Size:      s.FontSize(),
		Family:    s.FontFamily(),
		Color:     s.FontColor(),
		Bold:      s.Bold(),
		Italic:    s.Italic(),
		Underline: s.Underline(),
		Align:     diagram.AlignLeft,
	}
}
