package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-task-tracker/internal/http/httperr"
	"github.com/pribylovaa/go-task-tracker/internal/http/middleware"
	"github.com/pribylovaa/go-task-tracker/internal/models"
	"github.com/pribylovaa/go-task-tracker/internal/service"
)

// principal достаёт Principal, положенный мидлваром Authenticate.
// Его отсутствие на защищённом маршруте — ошибка сборки роутера;
// отвечаем 401, как будто токена не было, и не падаем.
func principal(w http.ResponseWriter, r *http.Request) (*models.Principal, bool) {
	p := middleware.PrincipalFrom(r.Context())
	if p == nil {
		httperr.Write(w, http.StatusUnauthorized, httperr.DetailUnauthorized)
		return nil, false
	}

	return p, true
}

// taskID разбирает {id} из пути. Нечисловой или неположительный id —
// несуществующий ресурс, 404.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.WriteError(w, service.ErrNotFound)
		return 0, false
	}

	return id, true
}

// ListTasks — GET /tasks.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), p.UserID)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskListFromModels(tasks))
}

// CreateTask — POST /tasks.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var in createTaskRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, &service.ValidationError{Reason: "invalid request body"})
		return
	}

	task, err := h.svc.CreateTask(r.Context(), service.CreateTaskInput{
		Owner:       p.UserID,
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, taskFromModel(task))
}

// GetTask — GET /tasks/{id}.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.svc.TaskByID(r.Context(), p.UserID, id)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskFromModel(task))
}

// UpdateTask — PUT /tasks/{id}.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var in updateTaskRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, &service.ValidationError{Reason: "invalid request body"})
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), service.UpdateTaskInput{
		Owner:       p.UserID,
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskFromModel(task))
}

// ToggleComplete — PATCH /tasks/{id}/complete.
func (h *Handlers) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.svc.ToggleComplete(r.Context(), p.UserID, id)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskFromModel(task))
}

// DeleteTask — DELETE /tasks/{id}.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), p.UserID, id); err != nil {
		httperr.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
