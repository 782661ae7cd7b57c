// Package models содержит доменные сущности tasks-сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Task — внутренняя доменная модель задачи.
// Важно:
//   - ID назначается сервером (BIGSERIAL), наружу отдаётся как int64.
//   - OwnerID — UUID пользователя из auth-сервиса; выставляется один раз
//     при создании из Principal запроса и никогда не берётся из тела запроса.
//   - Description — опциональное поле; nil означает «не задано» и наружу
//     сериализуется как null.
//   - CreatedAt неизменяем; UpdatedAt сдвигается при каждой мутации.
type Task struct {
	ID          int64
	OwnerID     uuid.UUID
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
