package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type contextKey string

const terminalIDKey contextKey = "terminalID"

// headerTerminalID заголовок с идентификатором терминала (въездной или
// выездной стойки)
const headerTerminalID = "X-Terminal-ID"

const msgMissingTerminalID = "отсутствует идентификатор терминала"

// Auth проверяет наличие заголовка X-Terminal-ID и кладёт его значение
// в контекст запроса. Запросы без заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		terminalID := strings.TrimSpace(r.Header.Get(headerTerminalID))
		if terminalID == "" {
			handlers.RespondUnauthorized(w, msgMissingTerminalID)
			return
		}

		ctx := context.WithValue(r.Context(), terminalIDKey, terminalID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTerminalID извлекает идентификатор терминала из контекста запроса
func GetTerminalID(ctx context.Context) (string, bool) {
	terminalID, ok := ctx.Value(terminalIDKey).(string)
	return terminalID, ok
}
