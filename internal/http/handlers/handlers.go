package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-task-tracker/internal/models"
	"github.com/pribylovaa/go-task-tracker/internal/service"
)

// TasksService — контракт бизнес-логики, который нужен HTTP-слою.
// Выделен интерфейсом, чтобы хендлеры тестировались без БД.
type TasksService interface {
	ListTasks(ctx context.Context, owner uuid.UUID) ([]models.Task, error)
	CreateTask(ctx context.Context, input service.CreateTaskInput) (*models.Task, error)
	TaskByID(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, input service.UpdateTaskInput) (*models.Task, error)
	ToggleComplete(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error)
	DeleteTask(ctx context.Context, owner uuid.UUID, id int64) error
}

// Проверка, что сервис реализует контракт.
var _ TasksService = (*service.Service)(nil)

// Handlers агрегирует зависимости HTTP-хендлеров.
type Handlers struct {
	svc TasksService
}

func New(svc TasksService) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
// На owner_id это правило работает буквально: поле в теле запроса — ошибка,
// владелец берётся только из Principal.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
