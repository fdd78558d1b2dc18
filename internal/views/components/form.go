package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"formchart/internal/models"
)

// FormPanel shows one labelled entry per record field, kept in sync with a
// models.FormBuffer in both directions.
type FormPanel struct {
	container *fyne.Container
	buffer    *models.FormBuffer
	entries   map[models.Field]*widget.Entry
}

// NewFormPanel creates the entries and binds them to buffer.
func NewFormPanel(buffer *models.FormBuffer) *FormPanel {
	fp := &FormPanel{
		buffer:  buffer,
		entries: make(map[models.Field]*widget.Entry, len(models.Fields)),
	}
	fp.createComponents()
	fp.buildLayout()
	buffer.OnChange(fp.showValues)
	return fp
}

func (fp *FormPanel) createComponents() {
	for _, f := range models.Fields {
		field := f
		entry := widget.NewEntry()
		entry.SetPlaceHolder(field.String())
		entry.OnChanged = func(text string) {
			fp.buffer.Set(field, text)
		}
		fp.entries[field] = entry
	}
	fp.showValues(fp.buffer.Values())
}

func (fp *FormPanel) buildLayout() {
	grid := container.New(layout.NewFormLayout())
	for _, f := range models.Fields {
		grid.Add(widget.NewLabel(f.String()))
		grid.Add(fp.entries[f])
	}
	fp.container = grid
}

func (fp *FormPanel) showValues(v models.FormValues) {
	fp.setText(models.FieldName, v.Name)
	fp.setText(models.FieldAge, v.Age)
	fp.setText(models.FieldAddress, v.Address)
	fp.setText(models.FieldHeight, v.Height)
}

func (fp *FormPanel) setText(f models.Field, text string) {
	if e := fp.entries[f]; e != nil && e.Text != text {
		e.SetText(text)
	}
}

// Entry exposes the entry of one field.
func (fp *FormPanel) Entry(f models.Field) *widget.Entry {
	return fp.entries[f]
}

// GetContainer returns the form container
func (fp *FormPanel) GetContainer() *fyne.Container {
	return fp.container
}
