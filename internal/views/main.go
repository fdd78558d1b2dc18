package views

import (
	"image"

	"formchart/internal/models"
	"formchart/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single application window: form and table on the left,
// charts on the right, status bar at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	form          *components.FormPanel
	actions       *components.ActionBar
	table         *components.RecordTable
	charts        *components.ChartPanel
	statusBar     *components.StatusBar
}

// Options sizes the chart panel.
type Options struct {
	ChartWidth  float32
	ChartHeight float32
}

// NewMainView builds the window content around the given view models.
func NewMainView(window fyne.Window, form *models.FormBuffer, table *models.TableModel, opts Options) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(form, table, opts)
	view.buildLayout()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(form *models.FormBuffer, table *models.TableModel, opts Options) {
	mv.form = components.NewFormPanel(form)
	mv.actions = components.NewActionBar()
	mv.table = components.NewRecordTable(table)
	mv.charts = components.NewChartPanel(2, opts.ChartWidth, opts.ChartHeight)
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	left := container.NewBorder(
		container.NewVBox(
			mv.form.GetContainer(),
			mv.actions.GetContainer(),
			widget.NewSeparator(),
		),
		nil,
		nil,
		nil,
		mv.table.GetContainer(),
	)

	split := container.NewHSplit(left, mv.charts.GetContainer())
	split.Offset = 0.45

	mv.mainContainer = container.NewBorder(
		nil,                         // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		split,                       // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by the application wiring

// SetSaveHandler sets the handler for the save button
func (mv *MainView) SetSaveHandler(handler func()) {
	mv.actions.SetSaveHandler(handler)
}

// SetClearHandler sets the handler for the clear button
func (mv *MainView) SetClearHandler(handler func()) {
	mv.actions.SetClearHandler(handler)
}

// SetDeleteHandler sets the handler for the delete button
func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.actions.SetDeleteHandler(handler)
}

// UI update methods

// SetChartImages shows freshly rendered charts
func (mv *MainView) SetChartImages(images []image.Image) {
	mv.charts.SetImages(images)
}

// SetRecordCount updates the record counter in the status bar
func (mv *MainView) SetRecordCount(n int) {
	mv.statusBar.SetRecordCount(n)
}

// SetDatabase shows the database path in the status bar
func (mv *MainView) SetDatabase(path string) {
	mv.statusBar.SetDatabase(path)
}

// UpdateStatus updates the status bar message. Safe to call from any goroutine.
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(err, mv.window)
}

// ShowWarning displays a warning dialog
func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}
