package ebiteninput

import "github.com/phanxgames/eventcore"

// InjectedTouchID is the touch ID used for injected pointer input. Real ebiten
// touch IDs are never negative.
const InjectedTouchID = -1

// syntheticEvent represents a single injected pointer event.
// Screen coordinates are used and converted to world coordinates with the
// Source's transform, identical to real input.
type syntheticEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a touch press at the given screen coordinates. The
// event is consumed on the next Update.
func (s *Source) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a move of the held touch. Use this between InjectPress
// and InjectRelease to simulate a drag.
func (s *Source) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a touch release at the given screen coordinates.
func (s *Source) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: false})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Source) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Source) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (s *Source) Pending() int {
	return len(s.injectQueue)
}

// processInjected pops one event from the inject queue and dispatches it as
// a touch event. Returns true if an event was consumed (real input should be
// skipped).
func (s *Source) processInjected(mods eventcore.KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	wx, wy := evt.screenX, evt.screenY
	if s.toWorld != nil {
		wx, wy = s.toWorld(wx, wy)
	}

	t := s.injected
	switch {
	case evt.pressed && t == nil:
		t = &eventcore.Touch{ID: InjectedTouchID, X: wx, Y: wy, StartX: wx, StartY: wy, PrevX: wx, PrevY: wy}
		s.injected = t
		s.dispatchTouches(eventcore.EventTouchStart, []*eventcore.Touch{t}, mods)
	case evt.pressed:
		t.PrevX, t.PrevY = t.X, t.Y
		t.X, t.Y = wx, wy
		s.dispatchTouches(eventcore.EventTouchMove, []*eventcore.Touch{t}, mods)
	case t != nil:
		t.PrevX, t.PrevY = t.X, t.Y
		t.X, t.Y = wx, wy
		s.injected = nil
		s.dispatchTouches(eventcore.EventTouchEnd, []*eventcore.Touch{t}, mods)
	}
	return true
}
