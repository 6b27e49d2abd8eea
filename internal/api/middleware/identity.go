package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// InitDataHeader заголовок с init data Telegram Mini App
const InitDataHeader = "X-Telegram-Init-Data"

type userKey struct{}

// Identity определяет пользователя и кладёт его в контекст.
// Пользователь необязателен: некорректные init data логируются, запрос идёт дальше анонимно
func Identity(source UserIdentitySource, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initData := r.Header.Get(InitDataHeader)

			user, err := source.Resolve(initData)
			switch {
			case err != nil && initData != "":
				log.Warn("Identity: %s %s - invalid init data, continuing anonymously: %v", r.Method, r.URL.Path, err)
			case err == nil && user != nil:
				r = r.WithContext(WithUser(r.Context(), user))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithUser возвращает контекст с пользователем
func WithUser(ctx context.Context, user *domain.TelegramUser) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext пользователь запроса, если он определён
func UserFromContext(ctx context.Context) (*domain.TelegramUser, bool) {
	user, ok := ctx.Value(userKey{}).(*domain.TelegramUser)
	return user, ok && user != nil
}
