package handlers

import (
	"time"

	"github.com/pribylovaa/go-task-tracker/internal/models"
)

// Wire-модели REST API. Доменные модели не сериализуются напрямую:
// формат ответа — контракт, и он не должен дрейфовать вместе с внутренними типами.

// taskResponse — JSON-представление задачи.
type taskResponse struct {
	ID          int64   `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// taskListResponse — ответ списка.
type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

// createTaskRequest — тело POST /tasks. Поля owner_id здесь нет и быть
// не может: владелец определяется токеном (decodeStrict отклонит лишние поля).
type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// updateTaskRequest — тело PUT /tasks/{id}; оба поля опциональны,
// но хотя бы одно обязано присутствовать (проверяет сервисный слой).
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func taskFromModel(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		OwnerID:     task.OwnerID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func taskListFromModels(tasks []models.Task) taskListResponse {
	items := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, taskFromModel(&tasks[i]))
	}

	return taskListResponse{Tasks: items}
}
