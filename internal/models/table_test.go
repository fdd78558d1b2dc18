package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{ID: 1, Name: "Ann", Age: 30, Address: "1 Main St", Height: 1.65},
		{ID: 4, Name: "Bob", Age: 52, Address: "2 Side Rd", Height: 1.8},
	}
}

func TestTableRebuildReplacesRows(t *testing.T) {
	tm := NewTableModel()
	tm.Rebuild(sampleRecords())
	require.Equal(t, 2, tm.Len())

	tm.Rebuild(sampleRecords()[:1])
	assert.Equal(t, 1, tm.Len())
	assert.Equal(t, "Ann", tm.Rows()[0].Name)

	tm.Rebuild(nil)
	assert.Zero(t, tm.Len())
}

func TestTableCells(t *testing.T) {
	tm := NewTableModel()
	tm.Rebuild(sampleRecords())

	assert.Equal(t, []string{"4", "Bob", "52", "2 Side Rd", "1.8"}, []string{
		tm.Cell(1, 0), tm.Cell(1, 1), tm.Cell(1, 2), tm.Cell(1, 3), tm.Cell(1, 4),
	})
	assert.Empty(t, tm.Cell(2, 0))
	assert.Empty(t, tm.Cell(0, 5))
	assert.Equal(t, []string{"ID", "Name", "Age", "Address", "Height"}, Columns)
}

func TestTableSelection(t *testing.T) {
	tm := NewTableModel()
	tm.Rebuild(sampleRecords())

	_, ok := tm.SelectedID()
	assert.False(t, ok)

	tm.Select(1)
	id, ok := tm.SelectedID()
	require.True(t, ok)
	assert.Equal(t, int64(4), id)

	tm.Select(9)
	_, ok = tm.SelectedID()
	assert.False(t, ok)

	tm.Select(0)
	tm.Unselect()
	_, ok = tm.SelectedID()
	assert.False(t, ok)
}

func TestTableRebuildDropsSelection(t *testing.T) {
	tm := NewTableModel()
	tm.Rebuild(sampleRecords())
	tm.Select(0)

	tm.Rebuild(sampleRecords())
	_, ok := tm.SelectedID()
	assert.False(t, ok)
}

func TestTableRowsIsACopy(t *testing.T) {
	tm := NewTableModel()
	recs := sampleRecords()
	tm.Rebuild(recs)

	recs[0].Name = "changed"
	rows := tm.Rows()
	rows[1].Name = "changed"
	assert.Equal(t, "Ann", tm.Rows()[0].Name)
	assert.Equal(t, "Bob", tm.Rows()[1].Name)
}

func TestTableNotifiesOnRebuild(t *testing.T) {
	tm := NewTableModel()
	calls := 0
	tm.OnChange(func() { calls++ })

	tm.Rebuild(sampleRecords())
	tm.Rebuild(nil)
	assert.Equal(t, 2, calls)
}
