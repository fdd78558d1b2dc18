package app

import (
	"context"
	"errors"

	"formchart/internal/controllers"
	"formchart/internal/logger"
	"formchart/internal/models"
)

// Controller is the set of transitions the buttons trigger.
type Controller interface {
	Save(ctx context.Context) error
	Delete(ctx context.Context) error
	ClearForm() error
}

// StatusView receives the one-line outcome of every action.
type StatusView interface {
	UpdateStatus(status string)
}

// Handlers translate button presses into controller transitions. Dialogs are
// raised by the controller itself; handlers only report the outcome in the
// status bar.
type Handlers struct {
	ctx        context.Context
	controller Controller
	status     StatusView
	logger     logger.Logger
}

func NewHandlers(ctx context.Context, controller Controller, status StatusView, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handlers{ctx: ctx, controller: controller, status: status, logger: log}
}

func (h *Handlers) HandleSave() {
	err := h.controller.Save(h.ctx)
	switch {
	case err == nil:
		h.status.UpdateStatus("Record saved")
	case errors.Is(err, models.ErrValidation):
		h.status.UpdateStatus("Please fill all fields correctly")
	default:
		h.report("save", err)
	}
}

func (h *Handlers) HandleDelete() {
	err := h.controller.Delete(h.ctx)
	switch {
	case err == nil:
		h.status.UpdateStatus("Record deleted")
	case errors.Is(err, models.ErrNoSelection):
		h.status.UpdateStatus("No row selected")
	default:
		h.report("delete", err)
	}
}

func (h *Handlers) HandleClear() {
	if err := h.controller.ClearForm(); err != nil {
		h.report("clear", err)
		return
	}
	h.status.UpdateStatus("Form cleared")
}

func (h *Handlers) report(action string, err error) {
	if errors.Is(err, controllers.ErrBusy) {
		h.status.UpdateStatus("Busy, try again")
		return
	}
	h.logger.Warning("Handlers", "action failed", map[string]interface{}{
		"action": action,
		"error":  err.Error(),
	})
	h.status.UpdateStatus("Action failed: " + action)
}
