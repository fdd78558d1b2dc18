package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"formchart/internal/logger"
	"formchart/internal/models"
)

const component = "SyncController"

// ErrBusy is returned when a transition is requested while another one is
// still running.
var ErrBusy = errors.New("another action is in progress")

// State is the controller's position in the save/delete cycle.
type State int

const (
	StateIdle State = iota
	StateSaving
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSaving:
		return "saving"
	case StateDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// RecordStore is the persistence the controller mutates and scans.
type RecordStore interface {
	Insert(ctx context.Context, name string, age int, address string, height float64) (int64, error)
	Delete(ctx context.Context, id int64) error
	ScanAll(ctx context.Context) ([]models.Record, error)
}

// TableView is the table projection of the record set.
type TableView interface {
	Rebuild(records []models.Record)
	SelectedID() (int64, bool)
}

// ChartView is the chart projection of the record set.
type ChartView interface {
	Rebuild(records []models.Record) error
}

// Form is the input buffer validated on save.
type Form interface {
	Validate() (models.Record, error)
	Clear()
}

// Notifier shows user-facing messages.
type Notifier interface {
	ShowError(title string, err error)
	ShowWarning(title, message string)
}

// SyncController keeps the store, the table and the charts consistent. Every
// mutation is followed by a full reload of the table and then the charts.
type SyncController struct {
	store    RecordStore
	table    TableView
	chart    ChartView
	form     Form
	notifier Notifier
	logger   logger.Logger

	mu        sync.RWMutex
	state     State
	listeners []func([]models.Record)
}

// NewSyncController wires the controller to its collaborators.
func NewSyncController(store RecordStore, table TableView, chart ChartView, form Form, notifier Notifier, log logger.Logger) *SyncController {
	if log == nil {
		log = logger.NewNop()
	}
	return &SyncController{
		store:    store,
		table:    table,
		chart:    chart,
		form:     form,
		notifier: notifier,
		logger:   log,
		state:    StateIdle,
	}
}

// State returns the current state.
func (c *SyncController) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// OnRefresh registers a hook called with the record set after every successful reload.
func (c *SyncController) OnRefresh(fn func([]models.Record)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Start builds the table and the charts once from the initial store contents.
func (c *SyncController) Start(ctx context.Context) error {
	if c.State() != StateIdle {
		return ErrBusy
	}
	if err := c.refresh(ctx); err != nil {
		c.logger.Error(component, err, map[string]interface{}{"stage": "startup"})
		return err
	}
	c.logger.Info(component, "initial load complete", nil)
	return nil
}

// Save validates the form, inserts the record, reloads both views and clears
// the form. On validation failure nothing is written and the form keeps its values.
func (c *SyncController) Save(ctx context.Context) error {
	if err := c.enter(StateSaving); err != nil {
		return err
	}
	defer c.leave()

	rec, err := c.form.Validate()
	if err != nil {
		c.logger.Warning(component, "save rejected", map[string]interface{}{"reason": err.Error()})
		c.notifier.ShowError("Error", err)
		return err
	}

	id, err := c.store.Insert(ctx, rec.Name, rec.Age, rec.Address, rec.Height)
	if err != nil {
		err = fmt.Errorf("save record: %w", err)
		c.logger.Error(component, err, nil)
		c.notifier.ShowError("Error", err)
		return err
	}
	c.logger.Info(component, "record saved", map[string]interface{}{"id": id})

	refreshErr := c.refresh(ctx)
	// the row is persisted, so the input is consumed even if a view failed to follow
	c.form.Clear()
	if refreshErr != nil {
		c.logger.Error(component, refreshErr, map[string]interface{}{"id": id})
		c.notifier.ShowError("Error", refreshErr)
		return refreshErr
	}
	return nil
}

// Delete removes the selected row from the store and reloads both views. No
// confirmation is asked.
func (c *SyncController) Delete(ctx context.Context) error {
	if err := c.enter(StateDeleting); err != nil {
		return err
	}
	defer c.leave()

	id, ok := c.table.SelectedID()
	if !ok {
		c.logger.Debug(component, "delete without selection", nil)
		c.notifier.ShowWarning("Warning", "No row selected")
		return models.ErrNoSelection
	}

	if err := c.store.Delete(ctx, id); err != nil {
		err = fmt.Errorf("delete record: %w", err)
		c.logger.Error(component, err, map[string]interface{}{"id": id})
		c.notifier.ShowError("Error", err)
		return err
	}
	c.logger.Info(component, "record deleted", map[string]interface{}{"id": id})

	if err := c.refresh(ctx); err != nil {
		c.logger.Error(component, err, map[string]interface{}{"id": id})
		c.notifier.ShowError("Error", err)
		return err
	}
	return nil
}

// ClearForm empties the form fields. Stored records and views are untouched.
func (c *SyncController) ClearForm() error {
	if c.State() != StateIdle {
		return ErrBusy
	}
	c.form.Clear()
	c.logger.Debug(component, "form cleared", nil)
	return nil
}

// refresh scans the store once and hands the same snapshot to the table and
// then to the charts. A failed scan leaves both views as they were.
func (c *SyncController) refresh(ctx context.Context) error {
	records, err := c.store.ScanAll(ctx)
	if err != nil {
		return fmt.Errorf("reload records: %w", err)
	}

	c.table.Rebuild(records)
	if err := c.chart.Rebuild(records); err != nil {
		return fmt.Errorf("reload charts: %w", err)
	}

	c.mu.RLock()
	listeners := append([]func([]models.Record){}, c.listeners...)
	c.mu.RUnlock()
	for _, fn := range listeners {
		fn(records)
	}

	c.logger.Debug(component, "views rebuilt", map[string]interface{}{"records": len(records)})
	return nil
}

func (c *SyncController) enter(next State) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		c.logger.Warning(component, "transition refused", map[string]interface{}{
			"from": c.state.String(),
			"to":   next.String(),
		})
		return ErrBusy
	}
	c.logger.Debug(component, "transition", map[string]interface{}{"from": c.state.String(), "to": next.String()})
	c.state = next
	return nil
}

func (c *SyncController) leave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
}
