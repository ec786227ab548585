package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const msgTooManyRequests = "превышен лимит запросов, повторите позже"

// RateLimit ограничивает частоту запросов token bucket лимитером.
// Лимитер общий на весь сервис: нагрузка на парковку определяется
// пропускной способностью шлагбаумов, а не числом клиентов.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
