package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"formchart/internal/models"
)

var columnWidths = []float32{50, 140, 60, 200, 80}

// RecordTable renders a models.TableModel and forwards row selection to it.
type RecordTable struct {
	container *fyne.Container
	table     *widget.Table
	model     *models.TableModel
}

// NewRecordTable creates a table widget reading from model.
func NewRecordTable(model *models.TableModel) *RecordTable {
	rt := &RecordTable{model: model}
	rt.createComponents()
	rt.buildLayout()
	model.OnChange(rt.reload)
	return rt
}

func (rt *RecordTable) createComponents() {
	rt.table = widget.NewTableWithHeaders(
		func() (int, int) {
			return rt.model.Len(), len(models.Columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(rt.model.Cell(id.Row, id.Col))
		},
	)
	rt.table.ShowHeaderColumn = false
	rt.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(models.Columns) {
			o.(*widget.Label).SetText(models.Columns[id.Col])
		}
	}
	for i, w := range columnWidths {
		rt.table.SetColumnWidth(i, w)
	}

	rt.table.OnSelected = func(id widget.TableCellID) {
		rt.model.Select(id.Row)
	}
	rt.table.OnUnselected = func(widget.TableCellID) {
		rt.model.Unselect()
	}
}

func (rt *RecordTable) buildLayout() {
	rt.container = container.NewStack(rt.table)
}

// reload drops the widget selection and redraws every row; the model has
// already replaced its rows.
func (rt *RecordTable) reload() {
	rt.table.UnselectAll()
	rt.table.Refresh()
}

// GetContainer returns the table container
func (rt *RecordTable) GetContainer() *fyne.Container {
	return rt.container
}
