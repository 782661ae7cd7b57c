package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-task-tracker/internal/auth"
	"github.com/pribylovaa/go-task-tracker/internal/http/httperr"
	"github.com/pribylovaa/go-task-tracker/internal/models"
	logctx "github.com/pribylovaa/go-task-tracker/pkg/log"
)

type ctxKeyPrincipal struct{}

// PrincipalFrom достаёт Principal из контекста запроса.
// Возвращает nil, если запрос не прошёл через Authenticate — для защищённых
// маршрутов это означает ошибку сборки роутера, а не пользовательскую.
func PrincipalFrom(ctx context.Context) *models.Principal {
	if v := ctx.Value(ctxKeyPrincipal{}); v != nil {
		if p, ok := v.(*models.Principal); ok {
			return p
		}
	}

	return nil
}

// Authenticate — Request Gate: извлекает Bearer-токен из Authorization,
// проверяет его Verifier-ом и кладёт Principal в контекст запроса.
//
// Любой отказ — отсутствующий заголовок, не-Bearer схема, битый токен,
// неверная подпись, истёкший срок — даёт один и тот же ответ
// 401 {"detail": "Invalid or expired token"}: вызывающая сторона не должна
// уметь отличать причины отказа и прощупывать ими систему. Конкретный вид
// отказа остаётся во внутренних логах. Без ретраев: проверка токена чистая
// и синхронная, её отказ окончателен для запроса.
func Authenticate(v *auth.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lg := logctx.From(r.Context())

			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				lg.Warn("auth_header_missing_or_malformed", "path", r.URL.Path)
				httperr.Write(w, http.StatusUnauthorized, httperr.DetailUnauthorized)
				return
			}

			principal, err := v.Verify(raw)
			if err != nil {
				// Во внутренний лог — конкретный вид отказа; наружу — общий 401.
				lg.Warn("token_rejected", "path", r.URL.Path, "err", err)
				httperr.Write(w, http.StatusUnauthorized, httperr.DetailUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyPrincipal{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken извлекает токен из значения заголовка Authorization.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "

	if header == "" || !strings.HasPrefix(header, prefix) || len(header) == len(prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
