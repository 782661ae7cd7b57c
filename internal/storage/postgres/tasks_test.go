package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-task-tracker/internal/models"
	"github.com/pribylovaa/go-task-tracker/internal/storage"
)

// Файл интеграционных тестов для пакета postgres (репозиторий tasks.go):
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет миграции из ./migrations (1_init_tasks.up.sql);
// - проверяет happy-path CRUD, изоляцию по владельцу (ErrNotFound/ErrOwnerMismatch),
//   атомарность конкурентных delete и корректную обработку ошибок контекста.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет миграцию tasks и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_tasks.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, st *Storage, owner uuid.UUID, title string, description *string) *models.Task {
	t.Helper()
	task, err := st.CreateTask(context.Background(), &models.Task{
		OwnerID:     owner,
		Title:       title,
		Description: description,
	})
	require.NoError(t, err)
	return task
}

// TestIntegration_CreateTask_And_TaskByID_OK — happy-path:
// создание задачи и последующее чтение владельцем; серверные поля назначены БД.
func TestIntegration_CreateTask_And_TaskByID_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	created := mustCreate(t, st, owner, "Buy milk", strPtr("2 liters"))

	require.Positive(t, created.ID)
	require.Equal(t, owner, created.OwnerID)
	require.False(t, created.Completed)
	require.WithinDuration(t, time.Now().UTC(), created.CreatedAt, 5*time.Second)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := st.TaskByID(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Buy milk", got.Title)
	require.NotNil(t, got.Description)
	require.Equal(t, "2 liters", *got.Description)
}

// TestIntegration_CreateTask_NilDescription — описание опционально: NULL в БД
// возвращается как nil-указатель.
func TestIntegration_CreateTask_NilDescription(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	created := mustCreate(t, st, owner, "No description", nil)
	require.Nil(t, created.Description)

	got, err := st.TaskByID(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.Nil(t, got.Description)
}

// TestIntegration_TaskByID_ForeignOwner_IndistinguishableFromAbsent —
// чужая задача и несуществующая задача дают один и тот же storage.ErrNotFound.
func TestIntegration_TaskByID_ForeignOwner_IndistinguishableFromAbsent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	stranger := uuid.New()
	created := mustCreate(t, st, owner, "private", nil)

	_, err := st.TaskByID(context.Background(), stranger, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.TaskByID(context.Background(), owner, created.ID+1000)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_ListTasks_OwnerScoped_NewestFirst — список строго по владельцу,
// отсортирован по created_at по убыванию; пустой список — валидный результат.
func TestIntegration_ListTasks_OwnerScoped_NewestFirst(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	other := uuid.New()

	first := mustCreate(t, st, owner, "first", nil)
	second := mustCreate(t, st, owner, "second", nil)
	mustCreate(t, st, other, "foreign", nil)

	tasks, err := st.ListTasks(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	// Новые первыми; при равных created_at — по id по убыванию.
	require.Equal(t, second.ID, tasks[0].ID)
	require.Equal(t, first.ID, tasks[1].ID)

	empty, err := st.ListTasks(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, empty)
}

// TestIntegration_UpdateTask_PartialAndOwnership — частичный апдейт сдвигает
// updated_at; чужой владелец получает ErrOwnerMismatch, отсутствующая запись — ErrNotFound.
func TestIntegration_UpdateTask_PartialAndOwnership(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	created := mustCreate(t, st, owner, "old title", strPtr("old description"))

	got, err := st.UpdateTask(context.Background(), owner, created.ID, storage.TaskUpdate{
		Title: strPtr("new title"),
	})
	require.NoError(t, err)
	require.Equal(t, "new title", got.Title)
	require.NotNil(t, got.Description)
	require.Equal(t, "old description", *got.Description)
	require.Equal(t, created.CreatedAt, got.CreatedAt)
	require.True(t, got.UpdatedAt.After(created.UpdatedAt) || got.UpdatedAt.Equal(created.UpdatedAt))

	_, err = st.UpdateTask(context.Background(), uuid.New(), created.ID, storage.TaskUpdate{
		Title: strPtr("hijack"),
	})
	require.ErrorIs(t, err, storage.ErrOwnerMismatch)

	_, err = st.UpdateTask(context.Background(), owner, created.ID+1000, storage.TaskUpdate{
		Title: strPtr("absent"),
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_ToggleComplete_Idempotent — двойной toggle возвращает задачу
// к исходному значению completed.
func TestIntegration_ToggleComplete_Idempotent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	created := mustCreate(t, st, owner, "toggle me", nil)
	require.False(t, created.Completed)

	once, err := st.ToggleComplete(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.True(t, once.Completed)

	twice, err := st.ToggleComplete(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.False(t, twice.Completed)

	_, err = st.ToggleComplete(context.Background(), uuid.New(), created.ID)
	require.ErrorIs(t, err, storage.ErrOwnerMismatch)
}

// TestIntegration_DeleteTask_And_ConcurrentDelete — удаление необратимо;
// из двух конкурентных delete по одному id ровно один успешен,
// второй наблюдает ErrNotFound (а не ошибку).
func TestIntegration_DeleteTask_And_ConcurrentDelete(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	created := mustCreate(t, st, owner, "to delete", nil)

	require.NoError(t, st.DeleteTask(context.Background(), owner, created.ID))

	_, err := st.TaskByID(context.Background(), owner, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Конкурентный сценарий.
	second := mustCreate(t, st, owner, "raced", nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.DeleteTask(context.Background(), owner, second.ID)
		}(i)
	}
	wg.Wait()

	var okCount, notFoundCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		default:
			require.ErrorIs(t, err, storage.ErrNotFound)
			notFoundCount++
		}
	}
	require.Equal(t, 1, okCount)
	require.Equal(t, 1, notFoundCount)
}

// TestIntegration_DeleteTask_ForeignOwner_Forbidden — чужой владелец получает
// ErrOwnerMismatch, запись остаётся на месте.
func TestIntegration_DeleteTask_ForeignOwner_Forbidden(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := uuid.New()
	created := mustCreate(t, st, owner, "keep me", nil)

	err := st.DeleteTask(context.Background(), uuid.New(), created.ID)
	require.ErrorIs(t, err, storage.ErrOwnerMismatch)

	got, err := st.TaskByID(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

// TestIntegration_ContextCanceled — отменённый контекст прерывает запрос,
// а не зависает на нём.
func TestIntegration_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.ListTasks(ctx, uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrNotFound)
}
