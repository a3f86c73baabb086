package eventcore

// Vec2 is a 2D point.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ListenerType identifies which partition a listener (or event) belongs to.
type ListenerType uint8

const (
	ListenerUnknown ListenerType = iota // events the manager does not route
	ListenerTouch                       // touch start/move/end/cancel
	ListenerMouse                       // mouse down/up/move/wheel
	ListenerCustom                      // named application events
)

func (t ListenerType) String() string {
	switch t {
	case ListenerTouch:
		return "touch"
	case ListenerMouse:
		return "mouse"
	case ListenerCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventUnknown     EventType = iota // zero value; rejected by DispatchEvent
	EventTouchStart                   // a finger touched down
	EventTouchMove                    // a touching finger moved
	EventTouchEnd                     // a finger lifted
	EventTouchCancel                  // the platform aborted the touch
	EventMouseDown                    // a mouse button was pressed
	EventMouseUp                      // a mouse button was released
	EventMouseMove                    // the cursor moved
	EventMouseWheel                   // the wheel scrolled
	EventCustom                       // application event routed by Event.Name
)

func (t EventType) String() string {
	switch t {
	case EventTouchStart:
		return "touch-start"
	case EventTouchMove:
		return "touch-move"
	case EventTouchEnd:
		return "touch-end"
	case EventTouchCancel:
		return "touch-cancel"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ListenerType returns the partition that receives events of this type.
func (t EventType) ListenerType() ListenerType {
	switch t {
	case EventTouchStart, EventTouchMove, EventTouchEnd, EventTouchCancel:
		return ListenerTouch
	case EventMouseDown, EventMouseUp, EventMouseMove, EventMouseWheel:
		return ListenerMouse
	case EventCustom:
		return ListenerCustom
	default:
		return ListenerUnknown
	}
}

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
