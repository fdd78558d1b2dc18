package app

import (
	"context"
	"fmt"
	"image"

	"formchart/internal/chart"
	"formchart/internal/config"
	"formchart/internal/controllers"
	"formchart/internal/logger"
	"formchart/internal/models"
	"formchart/internal/shutdown"
	"formchart/internal/store"
	"formchart/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName = "Form with SQLite and Chart"
	AppID   = "com.formchart.records"
)

// Application owns the window, the record store and everything in between.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.SyncController
	store      *store.Store
	renderer   *chart.Renderer
	logger     logger.Logger
	shutdown   *shutdown.Manager
	ctx        context.Context
}

// NewApplication opens the store and builds the window. A store that cannot
// be opened aborts startup before any window exists.
func NewApplication(ctx context.Context, cfg *config.Config, log logger.Logger, version string) (*Application, error) {
	st, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("record store", st)

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: version,
	})
	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	form := models.NewFormBuffer()
	table := models.NewTableModel()
	renderer := chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height, log)
	charts := models.NewChartModel(renderer)

	view := views.NewMainView(window, form, table, views.Options{
		ChartWidth:  float32(cfg.Chart.Width),
		ChartHeight: float32(cfg.Chart.Height),
	})
	view.SetDatabase(cfg.Database.Path)

	controller := controllers.NewSyncController(st, table, charts, form, view, log)

	renderer.OnDraw(func(images []image.Image) {
		view.SetChartImages(images)
	})
	controller.OnRefresh(func(records []models.Record) {
		view.SetRecordCount(len(records))
	})

	handlers := NewHandlers(shutdownManager.Context(), controller, view, log)
	view.SetSaveHandler(handlers.HandleSave)
	view.SetClearHandler(handlers.HandleClear)
	view.SetDeleteHandler(handlers.HandleDelete)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"database": cfg.Database.Path,
		"version":  version,
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		store:      st,
		renderer:   renderer,
		logger:     log,
		shutdown:   shutdownManager,
		ctx:        ctx,
	}, nil
}

// Run loads the initial data, shows the window and blocks until it is closed.
func (a *Application) Run() error {
	if err := a.controller.Start(a.ctx); err != nil {
		a.shutdown.Shutdown()
		return fmt.Errorf("initial load: %w", err)
	}

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	return nil
}
