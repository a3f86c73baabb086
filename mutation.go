package eventcore

// mutationOp is a registry change deferred while dispatching.
type mutationOp uint8

const (
	opAdd mutationOp = iota
	opRemove
)

type mutation struct {
	op mutationOp
	l  *Listener
}

// mutationLog records structural registry changes requested while a dispatch
// is in progress. It is applied once, when the outermost dispatch unwinds:
// every add in submission order, then every remove in submission order.
type mutationLog struct {
	entries []mutation
}

func (g *mutationLog) add(l *Listener) {
	g.entries = append(g.entries, mutation{op: opAdd, l: l})
}

func (g *mutationLog) remove(l *Listener) {
	g.entries = append(g.entries, mutation{op: opRemove, l: l})
}

func (g *mutationLog) len() int {
	return len(g.entries)
}

// pendingAdd reports whether l is waiting to be inserted.
func (g *mutationLog) pendingAdd(l *Listener) bool {
	for _, e := range g.entries {
		if e.op == opAdd && e.l == l {
			return true
		}
	}
	return false
}

// cancelAdd excises a pending add of l. Reports whether one was found.
func (g *mutationLog) cancelAdd(l *Listener) bool {
	found := false
	g.filter(func(e mutation) bool {
		if e.op == opAdd && e.l == l {
			found = true
			return false
		}
		return true
	})
	return found
}

// cancelAddsWhere excises every pending add whose listener matches fn and
// returns them.
func (g *mutationLog) cancelAddsWhere(fn func(*Listener) bool) []*Listener {
	var dropped []*Listener
	g.filter(func(e mutation) bool {
		if e.op == opAdd && fn(e.l) {
			dropped = append(dropped, e.l)
			return false
		}
		return true
	})
	return dropped
}

// forgetRemove drops pending removes of l; used when the flush sweep has
// already excised it.
func (g *mutationLog) forgetRemove(l *Listener) {
	g.filter(func(e mutation) bool {
		return e.op != opRemove || e.l != l
	})
}

func (g *mutationLog) filter(keep func(mutation) bool) {
	kept := g.entries[:0]
	for _, e := range g.entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	clear(g.entries[len(kept):])
	g.entries = kept
}

// apply drains the log, running every add before every remove.
func (g *mutationLog) apply(add, remove func(*Listener)) {
	entries := g.entries
	g.entries = nil
	for _, e := range entries {
		if e.op == opAdd {
			add(e.l)
		}
	}
	for _, e := range entries {
		if e.op == opRemove {
			remove(e.l)
		}
	}
}
