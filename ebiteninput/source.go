// Package ebiteninput turns ebiten's polled mouse, touch and keyboard state
// into eventcore events.
package ebiteninput

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/eventcore"
)

// Dispatcher receives the synthesized events. *eventcore.Manager implements it.
type Dispatcher interface {
	DispatchEvent(e *eventcore.Event)
}

// Option configures a Source.
type Option func(*Source)

// WithPoller replaces the live ebiten poller.
func WithPoller(p Poller) Option {
	return func(s *Source) { s.poller = p }
}

// WithTransform sets the screen-to-world conversion applied to every position.
func WithTransform(fn func(sx, sy float64) (float64, float64)) Option {
	return func(s *Source) { s.toWorld = fn }
}

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	core   eventcore.MouseButton
}{
	{ebiten.MouseButtonLeft, eventcore.MouseButtonLeft},
	{ebiten.MouseButtonRight, eventcore.MouseButtonRight},
	{ebiten.MouseButtonMiddle, eventcore.MouseButtonMiddle},
}

// Source polls input once per frame and dispatches the changes since the
// previous frame. Touches that begin, move or end in the same frame are
// batched into one event per phase.
type Source struct {
	target  Dispatcher
	poller  Poller
	toWorld func(sx, sy float64) (float64, float64)

	// Mouse state
	buttons    [len(mouseButtons)]bool
	lastX      float64
	lastY      float64
	seenCursor bool

	// Touch state
	touches map[ebiten.TouchID]*eventcore.Touch
	idBuf   []ebiten.TouchID

	// Synthetic input
	injectQueue []syntheticEvent
	injected    *eventcore.Touch
	script      *ScriptRunner
}

// New creates a Source feeding target.
func New(target Dispatcher, opts ...Option) *Source {
	s := &Source{
		target:  target,
		poller:  ebitenPoller{},
		touches: make(map[ebiten.TouchID]*eventcore.Touch),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update polls input and dispatches events. Call it from Game.Update. While
// injected events are queued, one is consumed per frame and real pointer
// input is skipped.
func (s *Source) Update() {
	if s.script != nil {
		s.script.step(s)
	}
	mods := s.readModifiers()
	if s.processInjected(mods) {
		return
	}
	s.processMouse(mods)
	s.processTouches(mods)
}

func (s *Source) world(x, y int) (float64, float64) {
	fx, fy := float64(x), float64(y)
	if s.toWorld != nil {
		return s.toWorld(fx, fy)
	}
	return fx, fy
}

// readModifiers reads the current keyboard modifier state.
func (s *Source) readModifiers() eventcore.KeyModifiers {
	p := s.poller
	var mods eventcore.KeyModifiers
	if p.IsKeyPressed(ebiten.KeyShift) || p.IsKeyPressed(ebiten.KeyShiftLeft) || p.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= eventcore.ModShift
	}
	if p.IsKeyPressed(ebiten.KeyControl) || p.IsKeyPressed(ebiten.KeyControlLeft) || p.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= eventcore.ModCtrl
	}
	if p.IsKeyPressed(ebiten.KeyAlt) || p.IsKeyPressed(ebiten.KeyAltLeft) || p.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= eventcore.ModAlt
	}
	if p.IsKeyPressed(ebiten.KeyMeta) || p.IsKeyPressed(ebiten.KeyMetaLeft) || p.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= eventcore.ModMeta
	}
	return mods
}

// processMouse emits move, button and wheel events for the cursor.
func (s *Source) processMouse(mods eventcore.KeyModifiers) {
	mx, my := s.poller.CursorPosition()
	wx, wy := s.world(mx, my)

	if !s.seenCursor || wx != s.lastX || wy != s.lastY {
		if s.seenCursor {
			s.dispatchMouse(eventcore.EventMouseMove, wx, wy, eventcore.MouseButtonLeft, mods)
		}
		s.seenCursor = true
		s.lastX = wx
		s.lastY = wy
	}

	for i, b := range mouseButtons {
		pressed := s.poller.IsMouseButtonPressed(b.ebiten)
		switch {
		case pressed && !s.buttons[i]:
			s.dispatchMouse(eventcore.EventMouseDown, wx, wy, b.core, mods)
		case !pressed && s.buttons[i]:
			s.dispatchMouse(eventcore.EventMouseUp, wx, wy, b.core, mods)
		}
		s.buttons[i] = pressed
	}

	if dx, dy := s.poller.Wheel(); dx != 0 || dy != 0 {
		e := eventcore.NewMouseEvent(eventcore.EventMouseWheel, wx, wy, eventcore.MouseButtonMiddle)
		e.ScrollX = dx
		e.ScrollY = dy
		e.Modifiers = mods
		s.target.DispatchEvent(e)
	}
}

func (s *Source) dispatchMouse(typ eventcore.EventType, x, y float64, button eventcore.MouseButton, mods eventcore.KeyModifiers) {
	e := eventcore.NewMouseEvent(typ, x, y, button)
	e.Modifiers = mods
	s.target.DispatchEvent(e)
}

// processTouches diffs the active touch IDs against the previous frame.
func (s *Source) processTouches(mods eventcore.KeyModifiers) {
	s.idBuf = s.poller.AppendTouchIDs(s.idBuf[:0])

	var began, moved, ended []*eventcore.Touch
	for _, id := range s.idBuf {
		tx, ty := s.poller.TouchPosition(id)
		wx, wy := s.world(tx, ty)
		t, ok := s.touches[id]
		if !ok {
			t = &eventcore.Touch{ID: int(id), X: wx, Y: wy, StartX: wx, StartY: wy, PrevX: wx, PrevY: wy}
			s.touches[id] = t
			began = append(began, t)
			continue
		}
		if wx != t.X || wy != t.Y {
			t.PrevX, t.PrevY = t.X, t.Y
			t.X, t.Y = wx, wy
			moved = append(moved, t)
		}
	}
	for id, t := range s.touches {
		if !slices.Contains(s.idBuf, id) {
			ended = append(ended, t)
			delete(s.touches, id)
		}
	}
	// Map iteration order is random; keep batches deterministic.
	slices.SortFunc(ended, func(a, b *eventcore.Touch) int { return a.ID - b.ID })

	s.dispatchTouches(eventcore.EventTouchStart, began, mods)
	s.dispatchTouches(eventcore.EventTouchMove, moved, mods)
	s.dispatchTouches(eventcore.EventTouchEnd, ended, mods)
}

func (s *Source) dispatchTouches(typ eventcore.EventType, touches []*eventcore.Touch, mods eventcore.KeyModifiers) {
	if len(touches) == 0 {
		return
	}
	e := eventcore.NewTouchEvent(typ, touches...)
	e.Modifiers = mods
	s.target.DispatchEvent(e)
}

// Cancel dispatches touch-cancel for every active touch and forgets them.
// Call it when the window loses focus.
func (s *Source) Cancel() {
	if len(s.touches) == 0 {
		return
	}
	cancelled := make([]*eventcore.Touch, 0, len(s.touches))
	for id, t := range s.touches {
		cancelled = append(cancelled, t)
		delete(s.touches, id)
	}
	slices.SortFunc(cancelled, func(a, b *eventcore.Touch) int { return a.ID - b.ID })
	s.dispatchTouches(eventcore.EventTouchCancel, cancelled, 0)
}

// ActiveTouches returns the number of touches currently down.
func (s *Source) ActiveTouches() int {
	return len(s.touches)
}
