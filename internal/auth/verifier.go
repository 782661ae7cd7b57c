// auth реализует проверку access-токенов, выпущенных внешним auth-сервисом.
//
// Verifier — чистая функция от (токен, секрет, текущее время): ни I/O,
// ни разделяемого состояния. Секрет подписи передаётся один раз через
// конструктор и далее не меняется, поэтому экземпляр безопасен для
// конкурентного использования.
//
// Виды отказов различаются только для внутренних логов; транспортный слой
// обязан схлопывать их в единый 401, не давая вызывающей стороне понять,
// чем именно плох токен.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-task-tracker/internal/config"
	"github.com/pribylovaa/go-task-tracker/internal/models"
)

var (
	// ErrTokenMalformed — строка не разбирается как JWT либо обязательные
	// клеймы (sub/uid, iat, exp) отсутствуют или имеют неверный тип.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrInvalidSignature — подпись не сходится при пересчёте с нашим секретом.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrTokenExpired — срок действия токена истёк (с учётом leeway).
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidToken — прочие отказы проверки (issuer/audience и т.п.).
	ErrInvalidToken = errors.New("invalid token")
)

// accessClaims — клеймы access-токена auth-сервиса.
type accessClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Verifier проверяет подпись, срок действия и обязательные клеймы токена.
type Verifier struct {
	cfg config.AuthConfig
}

// NewVerifier создаёт Verifier с иммутабельной конфигурацией проверки.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{cfg: cfg}
}

// Verify валидирует "сырой" bearer-токен и возвращает Principal.
//
// Порядок проверок (каждая отсекает дальнейшие):
//  1. разбор структуры JWT — ErrTokenMalformed;
//  2. алгоритм строго по allow-list (HS256) и пересчёт подписи —
//     ErrInvalidSignature; алгоритм из заголовка токена не принимается
//     на веру, чем исключается подмена alg;
//  3. наличие и типы обязательных клеймов — ErrTokenMalformed;
//  4. exp против текущего времени сервера — ErrTokenExpired.
//
// Сравнение подписи внутри библиотеки выполняется через hmac.Equal,
// то есть за константное время.
func (v *Verifier) Verify(raw string) (*models.Principal, error) {
	const op = "auth.Verify"

	if raw == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.cfg.Leeway),
	}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}
	if len(v.cfg.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience...))
	}

	token, err := jwt.ParseWithClaims(raw, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: unexpected signing method", op)
			}

			return []byte(v.cfg.JWTSecret), nil
		},
		opts...,
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidSignature)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
		default:
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	// Обязательные клеймы: uid (или sub), iat, exp.
	sub := claims.UserID
	if sub == "" {
		sub = claims.Subject
	}

	uid, err := uuid.Parse(sub)
	if err != nil || uid == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	return &models.Principal{
		UserID:    uid,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
