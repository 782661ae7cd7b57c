// service содержит бизнес-логику tasks-сервиса: валидацию входных данных
// и политику изоляции по владельцу поверх интерфейсов из пакета storage.
//
// Основные аспекты:
//   - Владелец каждой операции всегда берётся из Principal запроса и никогда
//     из пользовательского ввода; слой storage лишь исполняет проверку.
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.TasksStorage) потокобезопасно.
//   - Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-task-tracker/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные (валидация длины,
	// пустой апдейт и т.п.). HTTP: 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — задача не найдена; для чтения сюда же схлопнуто
	// несовпадение владельца. HTTP: 404.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied — мутация чужой задачи. HTTP: 403.
	// Возвращается только update/toggle/delete: контракт чтения нарочно
	// не отличает чужое от несуществующего.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInternal — внутренняя ошибка сервиса (storage/БД/контекст). HTTP: 500.
	ErrInternal = errors.New("internal")
)

// ValidationError уточняет ErrInvalidArgument причиной, безопасной для
// клиента: она описывает его собственный запрос и ничего не раскрывает.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Is делает errors.Is(err, ErrInvalidArgument) истинным для ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

// Service описывает бизнес-логику tasks-сервиса.
type Service struct {
	storage storage.TasksStorage
}

// New создаёт новый экземпляр Service.
func New(storage storage.TasksStorage) *Service {
	return &Service{storage: storage}
}
