// Package tui is the terminal host for the label overlay: it draws the
// diagram, routes keys, and supplies the overlay with its view, surface
// and deferred-callback scheduler.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"scrawl/canvas"
	"scrawl/diagram"
	"scrawl/geometry"
	"scrawl/layout"
	"scrawl/overlay"
)

// Mode is the app's input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
)

// App owns the screen, the diagram being edited and the label overlay.
type App struct {
	screen   tcell.Screen
	d        *diagram.Diagram
	layout   *layout.Simple
	view     *View
	textarea *TextArea
	editor   *overlay.Editor

	mode     Mode
	selected int // index into selectables, -1 for none
	filename string
	status   string
	selStyle tcell.Style

	// deferred callbacks run after the current event is fully handled.
	deferred []func()
	quit     bool
}

// NewApp creates an app editing d, with the overlay configured by opts
// and the selection highlighted in selectionColor.
func NewApp(d *diagram.Diagram, filename string, opts overlay.Options, selectionColor string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	a := &App{
		screen:   screen,
		d:        d,
		layout:   layout.NewSimple(),
		view:     NewView(d),
		textarea: NewTextArea(),
		selected: -1,
		filename: filename,
		selStyle: tcell.StyleDefault.Bold(true).Foreground(ParseColor(selectionColor)),
	}
	a.editor = overlay.New(d, a.view, a.textarea, overlay.SchedulerFunc(a.Defer), opts)
	if len(d.Nodes) > 0 {
		a.selected = 0
	}
	return a, nil
}

// Defer queues fn to run once the current event has been handled, on the
// same loop. Implements overlay.Scheduler.
func (a *App) Defer(fn func()) {
	a.deferred = append(a.deferred, fn)
}

// Run enters the event loop and blocks until the user quits.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer func() {
		a.editor.Destroy()
		a.screen.Fini()
	}()

	for !a.quit {
		a.layout.Apply(a.d)
		a.render()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventResize:
			a.screen.Sync()
		}

		// Drain callbacks deferred during this turn. A callback may
		// defer further work; keep going until the queue is empty.
		for len(a.deferred) > 0 {
			fn := a.deferred[0]
			a.deferred = a.deferred[1:]
			fn()
		}
	}
	return nil
}

// selectables returns all editable elements in a stable order: nodes
// first, then edges.
func (a *App) selectables() []diagram.ElementRef {
	refs := make([]diagram.ElementRef, 0, len(a.d.Nodes)+len(a.d.Edges))
	for _, n := range a.d.Nodes {
		refs = append(refs, diagram.NodeRef(n.ID))
	}
	for _, e := range a.d.Edges {
		refs = append(refs, diagram.EdgeRef(e.ID))
	}
	return refs
}

func (a *App) selectedRef() (diagram.ElementRef, bool) {
	refs := a.selectables()
	if a.selected < 0 || a.selected >= len(refs) {
		return diagram.ElementRef{}, false
	}
	return refs[a.selected], true
}

func (a *App) cycleSelection(delta int) {
	refs := a.selectables()
	if len(refs) == 0 {
		a.selected = -1
		return
	}
	a.selected = (a.selected + delta + len(refs)) % len(refs)
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.mode == ModeEdit {
		a.handleEditKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyTab:
		a.cycleSelection(1)
	case tcell.KeyBacktab:
		a.cycleSelection(-1)
	case tcell.KeyEnter:
		a.startEditingSelection(ev)
	case tcell.KeyEscape:
		a.status = ""
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.quit = true
		case 'e':
			a.startEditingSelection(ev)
		case 'a':
			ref := a.d.AddNode([]string{""})
			a.selectRef(ref)
			a.layout.Apply(a.d)
			a.startEditingSelection(ev)
		case 'd':
			if ref, ok := a.selectedRef(); ok {
				a.d.Remove(ref)
				a.cycleSelection(0)
			}
		case 's':
			a.save()
		}
	}
}

func (a *App) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.editor.StopEditing(true)
		a.mode = ModeNormal
	case tcell.KeyEnter:
		a.editor.StopEditing(false)
		a.mode = ModeNormal
	case tcell.KeyCtrlN:
		a.editor.InputReceived()
		a.textarea.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.editor.InputReceived()
		a.textarea.Backspace()
	case tcell.KeyCtrlW:
		a.editor.InputReceived()
		a.textarea.DeleteWordBackward()
	case tcell.KeyCtrlU:
		a.editor.InputReceived()
		a.textarea.DeleteToLineStart()
	case tcell.KeyCtrlK:
		a.editor.InputReceived()
		a.textarea.DeleteToLineEnd()
	case tcell.KeyLeft:
		a.textarea.MoveCursor(-1)
	case tcell.KeyRight:
		a.textarea.MoveCursor(1)
	case tcell.KeyUp:
		a.textarea.MoveCursorVertical(-1)
	case tcell.KeyDown:
		a.textarea.MoveCursorVertical(1)
	case tcell.KeyCtrlA:
		a.textarea.MoveCursorLineStart()
	case tcell.KeyCtrlE:
		a.textarea.MoveCursorLineEnd()
	case tcell.KeyRune:
		a.editor.InputReceived()
		a.textarea.InsertRune(ev.Rune())
	}

	// The overlay may have canceled itself, e.g. the edited element
	// vanished under it.
	if _, editing := a.editor.EditingElement(); !editing {
		a.mode = ModeNormal
	}
}

func (a *App) startEditingSelection(ev *tcell.EventKey) {
	ref, ok := a.selectedRef()
	if !ok {
		return
	}
	a.editor.StartEditing(ref, ev)
	if _, editing := a.editor.EditingElement(); editing {
		a.mode = ModeEdit
	}
}

func (a *App) selectRef(ref diagram.ElementRef) {
	for i, r := range a.selectables() {
		if r == ref {
			a.selected = i
			return
		}
	}
}

func (a *App) save() {
	if a.filename == "" {
		a.status = "no filename"
		return
	}
	if err := diagram.SaveFile(a.filename, a.d); err != nil {
		log.Error().Err(err).Str("file", a.filename).Msg("save failed")
		a.status = "save failed: " + err.Error()
		return
	}
	a.status = "saved " + a.filename
}

// render draws the diagram, the status line and, if attached, the overlay.
func (a *App) render() {
	a.screen.Clear()
	a.screen.HideCursor()
	sw, sh := a.screen.Size()

	m, err := canvas.NewMatrix(sw, geometry.Max(1, sh-1))
	if err != nil {
		return
	}

	selected, hasSelection := a.selectedRef()

	for _, e := range a.d.Edges {
		a.drawEdge(m, e)
	}
	for _, n := range a.d.Nodes {
		a.drawNode(m, n)
	}

	defaultStyle := tcell.StyleDefault
	for y := 0; y < sh-1; y++ {
		for x := 0; x < sw; x++ {
			st := defaultStyle
			if hasSelection && a.cellInElement(selected, x, y) {
				st = a.selStyle
			}
			a.screen.SetContent(x, y, m.Get(x, y), nil, st)
		}
	}

	a.drawStatusLine(sw, sh)
	a.textarea.Draw(a.screen)
	a.screen.Show()
}

func (a *App) drawNode(m *canvas.Matrix, n diagram.Node) {
	style := canvas.RoundedBox
	m.DrawBox(n.X, n.Y, n.Width, n.Height, style)

	if a.view.LabelHidden(diagram.NodeRef(n.ID)) {
		return
	}
	for i, line := range n.Text {
		if i >= n.Height-2 {
			break
		}
		m.DrawText(n.X+2, n.Y+1+i, line)
	}
}

func (a *App) drawEdge(m *canvas.Matrix, e diagram.Edge) {
	from := a.d.FindNode(e.From)
	to := a.d.FindNode(e.To)
	if from == nil || to == nil {
		return
	}
	fx, fy := from.X+from.Width/2, from.Y+from.Height/2
	tx, ty := to.X+to.Width/2, to.Y+to.Height/2

	// A simple L-shaped route: horizontal, then vertical.
	step := 1
	if tx < fx {
		step = -1
	}
	for x := fx; x != tx; x += step {
		m.Set(x, fy, '─')
	}
	step = 1
	if ty < fy {
		step = -1
	}
	for y := fy; y != ty; y += step {
		m.Set(tx, y, '│')
	}

	if e.Label != "" && !a.view.LabelHidden(diagram.EdgeRef(e.ID)) {
		m.DrawText((fx+tx)/2, (fy+ty)/2, e.Label)
	}
}

// cellInElement reports whether screen cell (x, y) belongs to el, used to
// highlight the selection.
func (a *App) cellInElement(el diagram.ElementRef, x, y int) bool {
	state := a.view.State(el)
	if state == nil {
		return false
	}
	if el.Kind == diagram.KindEdge {
		// Highlight the label anchor region only.
		return float64(y) == state.AbsoluteOffset.Y &&
			float64(x) >= state.AbsoluteOffset.X-1 && float64(x) <= state.AbsoluteOffset.X+8
	}
	return float64(x) >= state.X && float64(x) < state.X+state.Width &&
		float64(y) >= state.Y && float64(y) < state.Y+state.Height
}

func (a *App) drawStatusLine(sw, sh int) {
	help := "Tab: select  Enter/e: edit  a: add  d: delete  s: save  q: quit"
	if a.mode == ModeEdit {
		help = "Enter: commit  Esc: cancel  Ctrl+N: newline"
	}
	text := help
	if a.status != "" {
		text = a.status + "  |  " + help
	}
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len([]rune(text)) {
			r = []rune(text)[x]
		}
		a.screen.SetContent(x, sh-1, r, nil, style)
	}
}
