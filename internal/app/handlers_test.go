package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"formchart/internal/controllers"
	"formchart/internal/models"
)

type stubController struct {
	saveErr, deleteErr, clearErr error
	calls                        []string
}

func (s *stubController) Save(context.Context) error {
	s.calls = append(s.calls, "save")
	return s.saveErr
}

func (s *stubController) Delete(context.Context) error {
	s.calls = append(s.calls, "delete")
	return s.deleteErr
}

func (s *stubController) ClearForm() error {
	s.calls = append(s.calls, "clear")
	return s.clearErr
}

type statusRecorder struct{ last string }

func (s *statusRecorder) UpdateStatus(status string) { s.last = status }

func TestHandlersReportOutcome(t *testing.T) {
	tests := []struct {
		name string
		ctrl *stubController
		act  func(*Handlers)
		want string
	}{
		{"save ok", &stubController{}, (*Handlers).HandleSave, "Record saved"},
		{"save invalid", &stubController{saveErr: &models.MissingFieldError{Fields: []string{"Name"}}}, (*Handlers).HandleSave, "Please fill all fields correctly"},
		{"save busy", &stubController{saveErr: controllers.ErrBusy}, (*Handlers).HandleSave, "Busy, try again"},
		{"save store error", &stubController{saveErr: errors.New("disk")}, (*Handlers).HandleSave, "Action failed: save"},
		{"delete ok", &stubController{}, (*Handlers).HandleDelete, "Record deleted"},
		{"delete no selection", &stubController{deleteErr: models.ErrNoSelection}, (*Handlers).HandleDelete, "No row selected"},
		{"clear ok", &stubController{}, (*Handlers).HandleClear, "Form cleared"},
		{"clear busy", &stubController{clearErr: controllers.ErrBusy}, (*Handlers).HandleClear, "Busy, try again"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := &statusRecorder{}
			h := NewHandlers(context.Background(), tt.ctrl, status, nil)

			tt.act(h)
			assert.Equal(t, tt.want, status.last)
			assert.Len(t, tt.ctrl.calls, 1)
		})
	}
}
