package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and information
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	recordInfo   *widget.Label
	databaseInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.recordInfo = widget.NewLabel("Records: --")
	sb.databaseInfo = widget.NewLabel("Database: --")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.recordInfo,
		widget.NewSeparator(),
		sb.databaseInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetRecordCount updates the record counter
func (sb *StatusBar) SetRecordCount(n int) {
	sb.recordInfo.SetText(fmt.Sprintf("Records: %d", n))
}

// SetDatabase shows which database file is open
func (sb *StatusBar) SetDatabase(path string) {
	sb.databaseInfo.SetText("Database: " + path)
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.recordInfo.SetText("Records: --")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
