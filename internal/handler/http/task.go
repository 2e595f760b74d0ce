package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/payroll-backend-go/internal/domain/task"
	"github.com/peopledesk/payroll-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// ListByCompany implements TaskHandler.
func (h *TaskHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// Generate implements TaskHandler.
func (h *TaskHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Generate(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		slog.Error("Failed to generate task list", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task list regenerated", nil)
}

// Complete implements TaskHandler.
func (h *TaskHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	updated, err := h.taskService.Complete(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task completed", updated)
}

// Reopen implements TaskHandler.
func (h *TaskHandlerImpl) Reopen(w http.ResponseWriter, r *http.Request) {
	updated, err := h.taskService.Reopen(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task reopened", updated)
}
