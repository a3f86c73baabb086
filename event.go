package eventcore

// Touch is one contact point. ID is stable from touch-start to touch-end or
// touch-cancel and is the key the claim tracker uses.
type Touch struct {
	ID     int
	X, Y   float64
	StartX float64
	StartY float64
	PrevX  float64
	PrevY  float64
}

// Delta returns the movement since the previous touch-move.
func (t *Touch) Delta() (float64, float64) {
	return t.X - t.PrevX, t.Y - t.PrevY
}

// Event carries a single input or custom event through the dispatcher. A single
// flat struct is used for every event type to keep callbacks free of type
// switches.
type Event struct {
	Type EventType
	// Name routes EventCustom events to custom listeners.
	Name string

	// CurrentTarget is the anchor node of the listener being invoked, or
	// InvalidNode for fixed-priority listeners. Set by the dispatcher.
	CurrentTarget NodeID

	// Touch is the touch being dispatched. Touches is the mutable set of
	// touches still visible in this pass; swallowing listeners remove from it.
	Touch   *Touch
	Touches []*Touch

	// Mouse fields (valid for mouse events)
	X, Y      float64
	Button    MouseButton
	ScrollX   float64
	ScrollY   float64
	Modifiers KeyModifiers

	UserData any

	stopped bool
}

// NewTouchEvent creates a touch event carrying touches.
func NewTouchEvent(typ EventType, touches ...*Touch) *Event {
	return &Event{Type: typ, Touches: touches}
}

// NewMouseEvent creates a mouse event at (x, y).
func NewMouseEvent(typ EventType, x, y float64, button MouseButton) *Event {
	return &Event{Type: typ, X: x, Y: y, Button: button}
}

// NewCustomEvent creates an event for custom listeners registered under name.
func NewCustomEvent(name string, userData any) *Event {
	return &Event{Type: EventCustom, Name: name, UserData: userData}
}

// StopPropagation prevents listeners after the current one from receiving
// this event.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// IsStopped reports whether a listener stopped propagation.
func (e *Event) IsStopped() bool {
	return e.stopped
}
