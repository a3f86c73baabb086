package eventcore

import (
	"fmt"
	"log/slog"
	"time"
)

// debugStats holds per-dispatch timing and traversal metrics.
// Only logged when Config.Debug is true.
type debugStats struct {
	sortTime     time.Duration
	dispatchTime time.Duration
	flushTime    time.Duration
	sorts        int
	invoked      int
	flushed      int
}

// debugLog logs the stats of the dispatch that just unwound.
func (m *Manager) debugLog(e *Event, stats debugStats) {
	if !m.debug {
		return
	}
	m.log.Debug("dispatch",
		slog.String("event", e.Type.String()),
		slog.Duration("sort", stats.sortTime),
		slog.Duration("dispatch", stats.dispatchTime),
		slog.Duration("flush", stats.flushTime),
		slog.Int("sorts", stats.sorts),
		slog.Int("invoked", stats.invoked),
		slog.Int("flushed", stats.flushed),
	)
}

// warn logs a recoverable registry or dispatch error.
func (m *Manager) warn(msg string, err error, l *Listener, attrs ...any) {
	if l != nil {
		attrs = append(attrs,
			slog.Uint64("listener", uint64(l.id)),
			slog.String("type", l.kind.String()),
		)
	}
	attrs = append(attrs, slog.Any("err", err))
	m.log.Warn(msg, attrs...)
}

// safeCall runs a listener callback, converting a panic into a logged
// ErrListenerPanic so the rest of the pass still runs.
func (m *Manager) safeCall(l *Listener, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("listener callback panicked",
				slog.Uint64("listener", uint64(l.id)),
				slog.String("type", l.kind.String()),
				slog.Any("err", fmt.Errorf("%w: %v", ErrListenerPanic, r)),
			)
			ok = false
		}
	}()
	fn()
	m.stats.invoked++
	return true
}
