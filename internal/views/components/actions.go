package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ActionBar holds the save, clear and delete buttons.
type ActionBar struct {
	container    *fyne.Container
	saveButton   *widget.Button
	clearButton  *widget.Button
	deleteButton *widget.Button

	saveHandler   func()
	clearHandler  func()
	deleteHandler func()
}

// NewActionBar creates the button row.
func NewActionBar() *ActionBar {
	ab := &ActionBar{}
	ab.createComponents()
	ab.buildLayout()
	return ab
}

func (ab *ActionBar) createComponents() {
	ab.saveButton = widget.NewButtonWithIcon("Save Data", theme.DocumentSaveIcon(), func() {
		if ab.saveHandler != nil {
			ab.saveHandler()
		}
	})
	ab.saveButton.Importance = widget.HighImportance

	// only empties the form, stored records stay
	ab.clearButton = widget.NewButtonWithIcon("Clear All Data", theme.ContentClearIcon(), func() {
		if ab.clearHandler != nil {
			ab.clearHandler()
		}
	})

	ab.deleteButton = widget.NewButtonWithIcon("Delete Selected", theme.DeleteIcon(), func() {
		if ab.deleteHandler != nil {
			ab.deleteHandler()
		}
	})
	ab.deleteButton.Importance = widget.DangerImportance
}

func (ab *ActionBar) buildLayout() {
	ab.container = container.NewHBox(ab.saveButton, ab.clearButton, ab.deleteButton)
}

func (ab *ActionBar) SetSaveHandler(handler func()) {
	ab.saveHandler = handler
}

func (ab *ActionBar) SetClearHandler(handler func()) {
	ab.clearHandler = handler
}

func (ab *ActionBar) SetDeleteHandler(handler func()) {
	ab.deleteHandler = handler
}

// GetContainer returns the button row container
func (ab *ActionBar) GetContainer() *fyne.Container {
	return ab.container
}
