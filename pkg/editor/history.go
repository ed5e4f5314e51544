package editor

import "fmt"

// DefaultHistoryCapacity is the number of snapshots kept when none is configured.
const DefaultHistoryCapacity = 20

// History is a bounded, linear undo log. Pushing while the cursor is behind
// the newest entry discards the redo tail. Once full, the oldest entry is evicted.
type History struct {
	capacity int
	entries  []EditorSnapshot
	index    int
}

// NewHistory returns an empty log. capacity < 1 uses DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity, index: -1}
}

// Capacity is the maximum number of entries kept.
func (h *History) Capacity() int { return h.capacity }

// Len is the number of stored snapshots.
func (h *History) Len() int { return len(h.entries) }

// Index is the cursor position, or -1 when the log is empty.
func (h *History) Index() int { return h.index }

// Push stores a deep copy of s after the cursor and moves the cursor onto it.
func (h *History) Push(s EditorSnapshot) {
	h.entries = append(h.entries[:h.index+1], s.Clone())
	if over := len(h.entries) - h.capacity; over > 0 {
		// shift instead of reslicing so evicted snapshots can be collected
		n := copy(h.entries, h.entries[over:])
		clear(h.entries[n:])
		h.entries = h.entries[:n]
	}
	h.index = len(h.entries) - 1
}

// At returns a copy of the snapshot at i without moving the cursor.
func (h *History) At(i int) (EditorSnapshot, error) {
	if i < 0 || i >= len(h.entries) {
		return EditorSnapshot{}, fmt.Errorf("%w: %d (have %d)", ErrSnapshotIndex, i, len(h.entries))
	}
	return h.entries[i].Clone(), nil
}

// Seek moves the cursor to i and returns a copy of that snapshot.
func (h *History) Seek(i int) (EditorSnapshot, error) {
	s, err := h.At(i)
	if err != nil {
		return EditorSnapshot{}, err
	}
	h.index = i
	return s, nil
}

// CanUndo reports whether there is an entry before the cursor.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether there is an entry after the cursor.
func (h *History) CanRedo() bool { return h.index >= 0 && h.index < len(h.entries)-1 }

// Undo steps the cursor back one entry.
func (h *History) Undo() (EditorSnapshot, bool) {
	if !h.CanUndo() {
		return EditorSnapshot{}, false
	}
	s, _ := h.Seek(h.index - 1)
	return s, true
}

// Redo steps the cursor forward one entry.
func (h *History) Redo() (EditorSnapshot, bool) {
	if !h.CanRedo() {
		return EditorSnapshot{}, false
	}
	s, _ := h.Seek(h.index + 1)
	return s, true
}

// Clear drops every entry.
func (h *History) Clear() {
	h.entries = nil
	h.index = -1
}
