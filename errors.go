package eventcore

import "errors"

// Diagnostics reported through the manager's logger. None of them cross the
// dispatch boundary; registry operations report failure as a false result.
var (
	ErrDuplicateRegistration = errors.New("listener already registered")
	ErrInvalidPriority       = errors.New("invalid listener priority")
	ErrMissingAnchor         = errors.New("scene-graph listener has no anchor node")
	ErrUnknownEvent          = errors.New("event type is not routable")
	ErrUnavailable           = errors.New("listener is missing required callbacks")
	ErrListenerPanic         = errors.New("listener callback panicked")
)
