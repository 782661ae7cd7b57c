package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-task-tracker/internal/models"
	"github.com/pribylovaa/go-task-tracker/internal/storage"
)

// taskColumns — единый список колонок таблицы tasks,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const taskColumns = `
id, owner_id, title, description, completed, created_at, updated_at
`

// scanTask сканирует одну строку задачи из результата запроса в доменную модель.
func scanTask(row pgx.Row) (*models.Task, error) {
	var task models.Task

	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &task, nil
}

// retryOnce выполняет fn и повторяет её ровно один раз, если pgx гарантирует,
// что запрос не был отправлен на сервер (pgconn.SafeToRetry) — например,
// соединение из пула умерло до записи запроса. Любая другая ошибка,
// включая повторную, отдаётся наверх как есть.
func retryOnce[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	result, err := fn(ctx)
	if err != nil && pgconn.SafeToRetry(err) && ctx.Err() == nil {
		result, err = fn(ctx)
	}

	return result, err
}

// inTx выполняет fn в рамках одной транзакции: проверка владельца и мутация
// видят общий снимок и не могут разойтись с конкурентной мутацией той же записи.
func (s *Storage) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// lockOwner читает owner_id записи с блокировкой строки (FOR UPDATE).
// Возвращает storage.ErrNotFound, если записи нет, и storage.ErrOwnerMismatch,
// если запись принадлежит другому пользователю. Пока транзакция не завершена,
// конкурентные мутации той же строки ждут на блокировке.
func lockOwner(ctx context.Context, tx pgx.Tx, owner uuid.UUID, id int64) error {
	var recordOwner uuid.UUID

	err := tx.QueryRow(ctx, `SELECT owner_id FROM tasks WHERE id = $1 FOR UPDATE`, id).Scan(&recordOwner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.ErrNotFound
		}

		return err
	}

	if recordOwner != owner {
		return storage.ErrOwnerMismatch
	}

	return nil
}

// ListTasks возвращает все задачи владельца, новые первыми.
func (s *Storage) ListTasks(ctx context.Context, owner uuid.UUID) ([]models.Task, error) {
	const op = "storage.postgres.ListTasks"

	q := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

	result, err := retryOnce(ctx, func(ctx context.Context) ([]models.Task, error) {
		rows, err := s.db.Query(ctx, q, owner)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		tasks := make([]models.Task, 0)
		for rows.Next() {
			task, err := scanTask(rows)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, *task)
		}

		return tasks, rows.Err()
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// CreateTask вставляет новую задачу; id и таймстемпы назначает БД.
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	const op = "storage.postgres.CreateTask"

	q := `
	INSERT INTO tasks (owner_id, title, description, completed)
	VALUES ($1, $2, $3, $4)
	RETURNING
	` + taskColumns

	result, err := retryOnce(ctx, func(ctx context.Context) (*models.Task, error) {
		return scanTask(s.db.QueryRow(ctx, q,
			task.OwnerID,
			task.Title,
			task.Description,
			task.Completed,
		))
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// TaskByID возвращает задачу по id при совпадении владельца.
// Фильтр по owner_id стоит прямо в запросе: чужая запись и отсутствующая
// запись дают один и тот же pgx.ErrNoRows -> storage.ErrNotFound.
func (s *Storage) TaskByID(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error) {
	const op = "storage.postgres.TaskByID"

	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2`

	result, err := retryOnce(ctx, func(ctx context.Context) (*models.Task, error) {
		return scanTask(s.db.QueryRow(ctx, q, id, owner))
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UpdateTask выполняет частичный апдейт: обновляет только поля, указанные
// непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Проверка владельца и апдейт — одна транзакция (см. lockOwner).
func (s *Storage) UpdateTask(ctx context.Context, owner uuid.UUID, id int64, update storage.TaskUpdate) (*models.Task, error) {
	const op = "storage.postgres.UpdateTask"

	result, err := retryOnce(ctx, func(ctx context.Context) (*models.Task, error) {
		var task *models.Task

		err := s.inTx(ctx, func(tx pgx.Tx) error {
			if err := lockOwner(ctx, tx, owner, id); err != nil {
				return err
			}

			sets := []string{"updated_at = now()"}
			args := make([]any, 0, 3)
			count := 1

			if update.Title != nil {
				count++
				sets = append(sets, fmt.Sprintf("title = $%d", count))
				args = append(args, *update.Title)
			}

			if update.Description != nil {
				count++
				sets = append(sets, fmt.Sprintf("description = $%d", count))
				args = append(args, *update.Description)
			}

			q := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $1 RETURNING %s`,
				strings.Join(sets, ", "), taskColumns)

			var err error
			task, err = scanTask(tx.QueryRow(ctx, q, append([]any{id}, args...)...))
			return err
		})

		return task, err
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ToggleComplete инвертирует флаг completed со сдвигом updated_at.
// Проверка владельца и мутация — одна транзакция.
func (s *Storage) ToggleComplete(ctx context.Context, owner uuid.UUID, id int64) (*models.Task, error) {
	const op = "storage.postgres.ToggleComplete"

	q := `
	UPDATE tasks
	SET completed = NOT completed, updated_at = now()
	WHERE id = $1
	RETURNING
	` + taskColumns

	result, err := retryOnce(ctx, func(ctx context.Context) (*models.Task, error) {
		var task *models.Task

		err := s.inTx(ctx, func(tx pgx.Tx) error {
			if err := lockOwner(ctx, tx, owner, id); err != nil {
				return err
			}

			var err error
			task, err = scanTask(tx.QueryRow(ctx, q, id))
			return err
		})

		return task, err
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeleteTask удаляет запись навсегда (без soft-delete).
// Проверка владельца и удаление — одна транзакция: из двух конкурентных
// delete по одному id один завершится успехом, второй получит ErrNotFound.
func (s *Storage) DeleteTask(ctx context.Context, owner uuid.UUID, id int64) error {
	const op = "storage.postgres.DeleteTask"

	_, err := retryOnce(ctx, func(ctx context.Context) (struct{}, error) {
		err := s.inTx(ctx, func(tx pgx.Tx) error {
			if err := lockOwner(ctx, tx, owner, id); err != nil {
				return err
			}

			_, err := tx.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
			return err
		})

		return struct{}{}, err
	})

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
