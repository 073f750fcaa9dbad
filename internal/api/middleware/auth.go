package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

// UserEmailHeader заголовок с идентичностью пользователя, выставляется gateway
const UserEmailHeader = "X-User-Email"

const msgMissingUserEmail = "отсутствует идентификатор пользователя"

type ctxKey int

const ctxKeyUserEmail ctxKey = iota

// Auth требует заголовок X-User-Email и кладет email в контекст
// Аутентификация выполняется выше по цепочке, здесь только перенос идентичности
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(UserEmailHeader))
		if email == "" {
			handlers.RespondUnauthorized(w, msgMissingUserEmail)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserEmail(r.Context(), email)))
	})
}

// WithUserEmail кладет email пользователя в контекст
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxKeyUserEmail, email)
}

// GetUserEmail достает email пользователя из контекста
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxKeyUserEmail).(string)
	return email, ok && email != ""
}
