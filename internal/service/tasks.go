package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-task-tracker/internal/models"
	"github.com/pribylovaa/go-task-tracker/internal/storage"
	"github.com/pribylovaa/go-task-tracker/pkg/log"
)

// Границы длины полей в кодовых точках Unicode (не байтах).
const (
	titleMinLen       = 1
	titleMaxLen       = 200
	descriptionMaxLen = 1000
)

// Входные структуры сервисного слоя.
type CreateTaskInput struct {
	Owner       uuid.UUID
	Title       string
	Description *string
}

type UpdateTaskInput struct {
	Owner       uuid.UUID
	ID          int64
	Title       *string
	Description *string
}

// validateTitle проверяет длину заголовка в кодовых точках.
func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < titleMinLen {
		return &ValidationError{Reason: "title must not be empty"}
	}
	if n > titleMaxLen {
		return &ValidationError{Reason: fmt.Sprintf("title must be at most %d characters", titleMaxLen)}
	}

	return nil
}

// validateDescription проверяет длину описания; nil допустим.
func validateDescription(description *string) error {
	if description == nil {
		return nil
	}
	if utf8.RuneCountInString(*description) > descriptionMaxLen {
		return &ValidationError{Reason: fmt.Sprintf("description must be at most %d characters", descriptionMaxLen)}
	}

	return nil
}

// ListTasks возвращает все задачи владельца, новые первыми.
// Пустой список — валидный результат, не ошибка.
func (s *Service) ListTasks(ctx context.Context, owner uuid.UUID) ([]models.Task, error) {
	const op = "service/tasks/ListTasks"

	lg := log.From(ctx).With("op", op, "owner_id", owner.String())

	if owner == uuid.Nil {
		lg.Warn("invalid argument: empty owner")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.ListTasks(ctx, owner)
	if err != nil {
		lg.Error("storage error on ListTasks", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// CreateTask создаёт новую задачу.
//
// Валидация:
//   - owner обязателен (uuid.Nil -> ErrInvalidArgument);
//   - title — 1..200 кодовых точек;
//   - description — до 1000 кодовых точек, nil допустим.
//
// Владелец записи всегда равен owner из Principal; поля запроса
// на owner_id не влияют. completed всегда false при создании.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	const op = "service/tasks/CreateTask"

	lg := log.From(ctx).With("op", op, "owner_id", input.Owner.String())

	if input.Owner == uuid.Nil {
		lg.Warn("invalid argument: empty owner")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := validateTitle(input.Title); err != nil {
		lg.Warn("invalid title", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validateDescription(input.Description); err != nil {
		lg.Warn("invalid description", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	task := &models.Task{
		OwnerID:     input.Owner,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
	}

	result, err := s.storage.CreateTask(ctx, task)
	if err != nil {
		lg.Error("storage error on CreateTask", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// TaskByID возвращает задачу по id.
//
// Несуществующая и чужая задача неразличимы: обе дают ErrNotFound.
// Это осознанное решение контракта чтения — не подтверждать посторонним
// само существование записи.
func (s *Service) TaskByID(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error) {
	const op = "service/tasks/TaskByID"

	lg := log.From(ctx).With("op", op, "owner_id", owner.String(), "task_id", id)

	if owner == uuid.Nil || id <= 0 {
		lg.Warn("invalid argument")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.TaskByID(ctx, owner, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("task not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on TaskByID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// UpdateTask выполняет частичное обновление title/description.
//
// Правила:
//   - хотя бы одно из полей должно быть задано, иначе ErrInvalidArgument;
//   - заданные поля проходят ту же валидацию длины, что и при создании;
//   - в отличие от чтения, чужая задача даёт ErrPermissionDenied (403),
//     отсутствующая — ErrNotFound (404), как зафиксировано контрактом
//     мутирующих операций.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*models.Task, error) {
	const op = "service/tasks/UpdateTask"

	lg := log.From(ctx).With("op", op, "owner_id", input.Owner.String(), "task_id", input.ID)

	if input.Owner == uuid.Nil || input.ID <= 0 {
		lg.Warn("invalid argument")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.Title == nil && input.Description == nil {
		lg.Warn("invalid argument: empty update")

		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Reason: "at least one of title or description is required"})
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			lg.Warn("invalid title", "err", err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := validateDescription(input.Description); err != nil {
		lg.Warn("invalid description", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.storage.UpdateTask(ctx, input.Owner, input.ID, storage.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return nil, s.mapMutationError(ctx, op, err)
	}

	return result, nil
}

// ToggleComplete инвертирует флаг completed.
// Проверка владельца — как у UpdateTask (403/404 различимы).
func (s *Service) ToggleComplete(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error) {
	const op = "service/tasks/ToggleComplete"

	lg := log.From(ctx).With("op", op, "owner_id", owner.String(), "task_id", id)

	if owner == uuid.Nil || id <= 0 {
		lg.Warn("invalid argument")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.ToggleComplete(ctx, owner, id)
	if err != nil {
		return nil, s.mapMutationError(ctx, op, err)
	}

	return result, nil
}

// DeleteTask удаляет задачу навсегда.
// Проверка владельца — как у UpdateTask (403/404 различимы).
func (s *Service) DeleteTask(ctx context.Context, owner uuid.UUID, id int64) error {
	const op = "service/tasks/DeleteTask"

	lg := log.From(ctx).With("op", op, "owner_id", owner.String(), "task_id", id)

	if owner == uuid.Nil || id <= 0 {
		lg.Warn("invalid argument")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteTask(ctx, owner, id); err != nil {
		return s.mapMutationError(ctx, op, err)
	}

	return nil
}

// mapMutationError — общее отображение ошибок storage для мутирующих операций.
func (s *Service) mapMutationError(ctx context.Context, op string, err error) error {
	lg := log.From(ctx).With("op", op)

	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("task not found")

		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrOwnerMismatch):
		lg.Warn("owner mismatch")

		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	default:
		lg.Error("storage error", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
