// Package http собирает REST-маршруты tasks-сервиса c chi и мидлварами.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-task-tracker/internal/auth"
	"github.com/pribylovaa/go-task-tracker/internal/http/handlers"
	"github.com/pribylovaa/go-task-tracker/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с подключёнными middleware и роутами.
// Все маршруты задач защищены: Authenticate стоит перед бизнес-логикой,
// и запрос без валидного токена до хендлеров не доходит.
func NewRouter(svc handlers.TasksService, verifier *auth.Verifier, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики/гистограммы по шаблону маршрута
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	sub := chi.NewRouter()
	sub.Use(middleware.Authenticate(verifier))
	registerRoutes(sub, h)

	if opts.BasePath != "" {
		root.Mount(opts.BasePath, sub)
		return root
	}

	root.Mount("/", sub)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	r.Get("/tasks", h.ListTasks)
	r.Post("/tasks", h.CreateTask)
	r.Get("/tasks/{id}", h.GetTask)
	r.Put("/tasks/{id}", h.UpdateTask)
	r.Patch("/tasks/{id}/complete", h.ToggleComplete)
	r.Delete("/tasks/{id}", h.DeleteTask)
}
