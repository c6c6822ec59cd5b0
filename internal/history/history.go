// Package history provides a bounded linear undo/redo stack of grid
// snapshots.
package history

import (
	"time"

	"github.com/example/pixed/internal/grid"
)

// DefaultCapacity is the number of snapshots kept when no capacity is given.
const DefaultCapacity = 50

// Entry is a snapshot recorded at a point in time.
type Entry struct {
	Snapshot *grid.Grid
	Time     time.Time
}

// History stores snapshots and a cursor to the current one. Snapshots are
// copied on the way in and on the way out so callers can never alias them.
type History struct {
	entries  []Entry
	cursor   int
	capacity int
	now      func() time.Time
}

// Option modifies a History during creation.
type Option func(*History)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option { return func(h *History) { h.now = now } }

// New returns an empty History holding at most capacity entries. Capacities
// below two fall back to DefaultCapacity since a single entry cannot undo.
func New(capacity int, opts ...Option) *History {
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	h := &History{capacity: capacity, cursor: -1, now: time.Now}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Init discards any existing entries and seeds the history with g.
func (h *History) Init(g *grid.Grid) {
	h.entries = []Entry{{Snapshot: g.Clone(), Time: h.now()}}
	h.cursor = 0
}

// Push records g as the newest entry, dropping any redo branch. When the
// history is full the oldest entry is evicted.
func (h *History) Push(g *grid.Grid) {
	h.entries = append(h.entries[:h.cursor+1], Entry{Snapshot: g.Clone(), Time: h.now()})
	if len(h.entries) > h.capacity {
		drop := len(h.entries) - h.capacity
		clear(h.entries[:drop])
		h.entries = h.entries[drop:]
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry and returns a copy of its snapshot. It reports
// false when there is nothing to undo.
func (h *History) Undo() (*grid.Grid, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return h.entries[h.cursor].Snapshot.Clone(), true
}

// Redo steps forward one entry and returns a copy of its snapshot. It reports
// false at the newest entry.
func (h *History) Redo() (*grid.Grid, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	return h.entries[h.cursor].Snapshot.Clone(), true
}

// Matches reports whether g equals the snapshot at the cursor.
func (h *History) Matches(g *grid.Grid) bool {
	if h.cursor < 0 {
		return false
	}
	return h.entries[h.cursor].Snapshot.Equal(g)
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.entries)-1 }

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the index of the current entry, or -1 before Init.
func (h *History) Cursor() int { return h.cursor }

// Capacity returns the maximum number of entries.
func (h *History) Capacity() int { return h.capacity }

// Entries returns the stored entries oldest first. The snapshots are copies.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		out[i] = Entry{Snapshot: e.Snapshot.Clone(), Time: e.Time}
	}
	return out
}
