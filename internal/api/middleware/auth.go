package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/ESJ-BookingService/internal/api/handlers"
)

const msgUnauthorized = "se requiere autenticación"

// TokenVerifier проверяет валидность токена сессии администратора
type TokenVerifier interface {
	VerifyToken(token string) bool
}

// Auth проверяет заголовок Authorization: Bearer <token> на защищенных маршрутах
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" || !verifier.VerifyToken(token) {
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
