package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
)

const msgMissingUserID = "требуется заголовок X-User-ID"

type contextKey string

const userIDKey contextKey = "user_id"

// Auth проверяет заголовок X-User-ID и кладет ID пользователя в контекст.
// Аутентификация выполняется на API-шлюзе, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext достает ID аутентифицированного пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
