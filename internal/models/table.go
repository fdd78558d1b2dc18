package models

import (
	"strconv"
	"sync"
)

// Columns are the table headings, id first, matching the stored column order.
var Columns = []string{"ID", "Name", "Age", "Address", "Height"}

// TableModel is the ordered projection of the record set shown in the table.
// It has no state of its own beyond the last snapshot and the selection.
type TableModel struct {
	mu        sync.RWMutex
	rows      []Record
	selected  int
	listeners []func()
}

// NewTableModel creates an empty table model with no selection.
func NewTableModel() *TableModel {
	return &TableModel{selected: -1}
}

// Rebuild discards every row and the selection, then loads records in the
// order given.
func (t *TableModel) Rebuild(records []Record) {
	t.mu.Lock()
	t.selected = -1
	t.rows = make([]Record, len(records))
	copy(t.rows, records)
	t.mu.Unlock()

	t.notify()
}

// Rows returns a copy of the displayed rows.
func (t *TableModel) Rows() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Record, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of displayed rows.
func (t *TableModel) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Cell returns the display text at row, col. Out of range cells are empty.
func (t *TableModel) Cell(row, col int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if row < 0 || row >= len(t.rows) {
		return ""
	}
	r := t.rows[row]
	switch col {
	case 0:
		return strconv.FormatInt(r.ID, 10)
	case 1:
		return r.Name
	case 2:
		return strconv.Itoa(r.Age)
	case 3:
		return r.Address
	case 4:
		return FormatHeight(r.Height)
	default:
		return ""
	}
}

// Select marks a row as selected. Out of range rows clear the selection.
func (t *TableModel) Select(row int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if row < 0 || row >= len(t.rows) {
		t.selected = -1
		return
	}
	t.selected = row
}

// Unselect clears the selection.
func (t *TableModel) Unselect() {
	t.Select(-1)
}

// SelectedID returns the id of the selected row.
func (t *TableModel) SelectedID() (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.selected < 0 || t.selected >= len(t.rows) {
		return 0, false
	}
	return t.rows[t.selected].ID, true
}

// OnChange registers a listener called after every rebuild.
func (t *TableModel) OnChange(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

func (t *TableModel) notify() {
	t.mu.RLock()
	listeners := make([]func(), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
