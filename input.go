package paper

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown      EventType = iota // a view received pointerdown
	EventPointerMove                       // the active view received pointermove
	EventPointerUp                         // the active view received pointerup
	EventBlankPointerDown                  // pointerdown over blank canvas
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TouchPoint is one contact of a touch event.
type TouchPoint struct {
	ID               int
	ClientX, ClientY float64
	Target           *Node
}

// PointerEvent is a raw mouse or touch event in paper coordinates.
type PointerEvent struct {
	// Target is the render node the event occurred on; nil or the paper's
	// root node for blank canvas.
	Target           *Node
	ClientX, ClientY float64
	Button           MouseButton
	Modifiers        KeyModifiers
	// ChangedTouches lists the touch contacts that changed. When non-empty
	// the first one supplies the event's coordinates and target.
	ChangedTouches []TouchPoint

	defaultPrevented bool
}

// PreventDefault marks the event as handled by the paper.
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// normalizeEvent reduces a multi-touch event to its first changed touch.
func normalizeEvent(evt *PointerEvent) *PointerEvent {
	if len(evt.ChangedTouches) == 0 {
		return evt
	}
	t := evt.ChangedTouches[0]
	n := *evt
	n.ClientX, n.ClientY = t.ClientX, t.ClientY
	if t.Target != nil {
		n.Target = t.Target
	}
	n.ChangedTouches = nil
	return &n
}

// --- Handler registry ---

type blankHandler struct {
	id uint32
	fn func(evt *PointerEvent, x, y float64)
}

type handlerRegistry struct {
	blankPointerDown []blankHandler
	nextID           uint32
}

// CallbackHandle allows removing a registered paper-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.blankPointerDown
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = blankHandler{}
			h.reg.blankPointerDown = s[:len(s)-1]
			return
		}
	}
}

// OnBlankPointerDown registers a callback for pointerdown over blank canvas.
// x and y are the grid-snapped local coordinates.
func (p *Paper) OnBlankPointerDown(fn func(evt *PointerEvent, x, y float64)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.blankPointerDown = append(p.handlers.blankPointerDown, blankHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers}
}

// --- Dispatch ---

// PointerDown starts an interaction with the view under evt.Target, or
// reports a blank-canvas press. Ignored while a view is active.
func (p *Paper) PointerDown(evt *PointerEvent) {
	evt.PreventDefault()
	evt = normalizeEvent(evt)
	if p.active != nil {
		return
	}

	local := p.SnapToGrid(Vec2{evt.ClientX, evt.ClientY})
	if view := p.FindView(evt.Target); view != nil {
		p.active = view
		logger().Debug("paper: pointer active", "cell", view.Model().ID())
		view.PointerDown(evt, local.X, local.Y)
		p.emitInteractionEvent(EventPointerDown, view, evt, local)
		return
	}

	for _, h := range p.handlers.blankPointerDown {
		h.fn(evt, local.X, local.Y)
	}
	p.emitInteractionEvent(EventBlankPointerDown, nil, evt, local)
}

// PointerMove forwards evt to the active view. No-op when idle.
func (p *Paper) PointerMove(evt *PointerEvent) {
	evt.PreventDefault()
	evt = normalizeEvent(evt)
	view := p.active
	if view == nil {
		return
	}
	local := p.SnapToGrid(Vec2{evt.ClientX, evt.ClientY})
	view.PointerMove(evt, local.X, local.Y)
	p.emitInteractionEvent(EventPointerMove, view, evt, local)
}

// PointerUp forwards evt to the active view and ends the interaction.
// No-op when idle.
func (p *Paper) PointerUp(evt *PointerEvent) {
	evt.PreventDefault()
	evt = normalizeEvent(evt)
	view := p.active
	if view == nil {
		return
	}
	view.PointerUp(evt)
	p.active = nil
	logger().Debug("paper: pointer idle", "cell", view.Model().ID())
	p.emitInteractionEvent(EventPointerUp, view, evt, p.SnapToGrid(Vec2{evt.ClientX, evt.ClientY}))
}

func (p *Paper) emitInteractionEvent(eventType EventType, view View, evt *PointerEvent, local Vec2) {
	if p.store == nil {
		return
	}
	var cellID string
	if view != nil {
		cellID = view.Model().ID()
	}
	p.store.EmitEvent(InteractionEvent{
		Type:      eventType,
		CellID:    cellID,
		GlobalX:   evt.ClientX,
		GlobalY:   evt.ClientY,
		LocalX:    local.X,
		LocalY:    local.Y,
		Button:    evt.Button,
		Modifiers: evt.Modifiers,
	})
}

// --- Ebiten input ---

// pointerTrack remembers the last state of one physical pointer between frames.
type pointerTrack struct {
	down         bool
	lastX, lastY float64
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput turns this frame's mouse and touch state into pointer events.
// An injected event, when queued, replaces real mouse input for the frame.
func (p *Paper) processInput() {
	mods := readModifiers()
	if !p.processInjectedInput(mods) {
		p.processMousePointer(mods)
	}
	p.processTouchPointer(mods)
}

// processMousePointer handles the mouse.
func (p *Paper) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	p.processPointer(&p.mouse, float64(mx), float64(my), pressed, button, mods, -1)
}

// processTouchPointer follows the first touch contact. Further contacts are
// ignored until it lifts, since only one interaction can be active.
func (p *Paper) processTouchPointer(mods KeyModifiers) {
	ids := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = ids

	if p.touch.down {
		for _, id := range ids {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				p.processPointer(&p.touch, float64(tx), float64(ty), true, MouseButtonLeft, mods, int(id))
				return
			}
		}
		p.processPointer(&p.touch, p.touch.lastX, p.touch.lastY, false, MouseButtonLeft, mods, int(p.touchID))
		return
	}
	if len(ids) > 0 {
		p.touchID = ids[0]
		tx, ty := ebiten.TouchPosition(ids[0])
		p.processPointer(&p.touch, float64(tx), float64(ty), true, MouseButtonLeft, mods, int(ids[0]))
	}
}

// processPointer compares a pointer's state with the previous frame and
// dispatches down, move or up. touchID >= 0 builds a touch event.
func (p *Paper) processPointer(track *pointerTrack, x, y float64, pressed bool, button MouseButton, mods KeyModifiers, touchID int) {
	moved := x != track.lastX || y != track.lastY
	wasDown := track.down
	track.down = pressed
	track.lastX, track.lastY = x, y

	if !pressed && !wasDown && !moved {
		return
	}

	target := p.NodeAt(Vec2{x, y})
	if target == nil {
		target = p.root
	}
	evt := &PointerEvent{Button: button, Modifiers: mods}
	if touchID >= 0 {
		evt.ChangedTouches = []TouchPoint{{ID: touchID, ClientX: x, ClientY: y, Target: target}}
	} else {
		evt.Target = target
		evt.ClientX, evt.ClientY = x, y
	}

	switch {
	case pressed && !wasDown:
		p.PointerDown(evt)
	case !pressed && wasDown:
		p.PointerUp(evt)
	case moved:
		p.PointerMove(evt)
	}
}
