// storage содержит контракты слоя хранилища tasks-сервиса.
//
// Ключевое правило слоя: каждая операция параметризована владельцем
// (owner — UserID из Principal запроса) и сама отвечает за то, чтобы
// проверка владения и мутация были одним атомарным действием против БД.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-task-tracker/internal/models"
)

var (
	// ErrNotFound — задача не найдена. Для чтения по id сюда же схлопывается
	// несовпадение владельца: отвечать "чужая" значило бы подтвердить
	// существование записи постороннему.
	ErrNotFound = errors.New("not found")

	// ErrOwnerMismatch — запись существует, но принадлежит другому
	// пользователю. Возвращается только мутирующими операциями
	// (update/toggle/delete), где контракт различает 403 и 404.
	ErrOwnerMismatch = errors.New("owner mismatch")
)

// TaskUpdate — частичный апдейт задачи.
// Поля задаются указателями: обновляются только непустые указатели,
// updated_at сдвигается всегда.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// Tasks — контракт репозитория задач.
type Tasks interface {
	// ListTasks возвращает все задачи владельца, новые первыми
	// (created_at DESC). Пустой список — валидный результат.
	ListTasks(ctx context.Context, owner uuid.UUID) ([]models.Task, error)
	// CreateTask вставляет новую задачу и возвращает её с серверными
	// полями (id, таймстемпы) из БД.
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	// TaskByID возвращает задачу по id при совпадении владельца;
	// отсутствие и чужое владение неразличимы (ErrNotFound).
	TaskByID(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error)
	// UpdateTask атомарно проверяет владельца и применяет частичный апдейт.
	// Ошибки: ErrNotFound, ErrOwnerMismatch.
	UpdateTask(ctx context.Context, owner uuid.UUID, id int64, update TaskUpdate) (*models.Task, error)
	// ToggleComplete атомарно проверяет владельца и инвертирует completed.
	// Ошибки: ErrNotFound, ErrOwnerMismatch.
	ToggleComplete(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error)
	// DeleteTask атомарно проверяет владельца и удаляет запись навсегда.
	// Ошибки: ErrNotFound, ErrOwnerMismatch.
	DeleteTask(ctx context.Context, owner uuid.UUID, id int64) error
}

// TasksStorage — верхнеуровневый интерфейс хранилища задач.
type TasksStorage interface {
	Tasks
	Close()
}
