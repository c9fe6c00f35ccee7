package middleware

import (
	"net/http"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
)

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth проверяет наличие идентификатора пользователя в запросе
// Гейтвей доверяет внешнему слою аутентификации и требует только
// проброс заголовка X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-User-ID") == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r)
	})
}
