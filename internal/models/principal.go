package models

import (
	"time"

	"github.com/google/uuid"
)

// Principal — проверенная личность запроса, восстановленная из валидного
// access-токена. Живёт ровно один запрос: создаётся Request Gate после
// успешной проверки токена, никогда не сохраняется и не изменяется.
type Principal struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}
