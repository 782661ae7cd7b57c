// httperr стандартизирует ответы об ошибках HTTP-слоя tasks-сервиса.
// На вход принимает доменную ошибку (сентинелы пакета service),
// на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Формат тела ошибок фиксирован wire-контрактом: {"detail": "<string>"}.
// Для 400 допускается уточнённое сообщение валидации — оно описывает
// собственный запрос клиента; всё остальное (текст SQL, причины отказа
// токена, stack trace) наружу не сериализуется никогда.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-task-tracker/internal/service"
)

// ErrorResponse — единый формат тела ошибки.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// DetailUnauthorized — единственное сообщение для любых отказов аутентификации:
// отсутствие заголовка, битый токен, неверная подпись и истёкший срок
// неразличимы для вызывающей стороны.
const DetailUnauthorized = "Invalid or expired token"

// ToHTTP конвертирует доменную ошибку в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - service.ErrInvalidArgument -> 400 (с уточнением из ValidationError, если есть);
//   - service.ErrPermissionDenied -> 403;
//   - service.ErrNotFound -> 404;
//   - прочее (включая service.ErrInternal) -> 500 с опаковым сообщением.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Detail: "internal error"}
	}

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return http.StatusBadRequest, ErrorResponse{Detail: verr.Reason}
		}

		return http.StatusBadRequest, ErrorResponse{Detail: "invalid argument"}
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, ErrorResponse{Detail: "forbidden"}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Detail: "not found"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Detail: "internal error"}
	}
}

// WriteError — хелпер для HTTP-хендлеров: пишет статус и тело по ToHTTP.
func WriteError(w http.ResponseWriter, err error) {
	status, resp := ToHTTP(err)
	Write(w, status, resp.Detail)
}

// Write пишет ответ об ошибке с произвольным статусом и detail.
// Используется мидлварами, когда статус известен заранее (401).
func Write(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: detail})
}
