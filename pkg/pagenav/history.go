package pagenav

import "github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"

// HistoryEntry records one forward navigation: the page that was left, and
// how the new page was brought in.
type HistoryEntry struct {
	PageID     string
	Direction  constants.Direction
	Transition constants.TransitionType
}

// History is a bounded navigation stack. When full, pushing shifts out the
// oldest entry.
type History struct {
	entries  []HistoryEntry
	capacity int
}

// NewHistory creates an empty history holding at most capacity entries.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		entries:  make([]HistoryEntry, 0, capacity),
		capacity: capacity,
	}
}

// Push appends an entry. Returns true if the oldest entry was dropped to make room.
func (h *History) Push(entry HistoryEntry) bool {
	dropped := false
	if len(h.entries) >= h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
		dropped = true
	}
	h.entries = append(h.entries, entry)
	return dropped
}

// Pop removes and returns the newest entry.
// Returns nil if the history is empty.
func (h *History) Pop() *HistoryEntry {
	if len(h.entries) == 0 {
		return nil
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return &entry
}

// Peek returns the newest entry without removing it.
// Returns nil if the history is empty.
func (h *History) Peek() *HistoryEntry {
	if len(h.entries) == 0 {
		return nil
	}
	entry := h.entries[len(h.entries)-1]
	return &entry
}

func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Cap() int {
	return h.capacity
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// restore replaces the contents with entries, keeping the newest that fit.
func (h *History) restore(entries []HistoryEntry) {
	if len(entries) > h.capacity {
		entries = entries[len(entries)-h.capacity:]
	}
	h.entries = append(h.entries[:0], entries...)
}
