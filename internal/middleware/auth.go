package middleware

import (
	"context"
	"net/http"
	"time"

	"windkey/internal/auth"
)

// authCookieName — имя cookie с токеном сессии.
const authCookieName = "auth_token"

// tokenTTL — срок жизни токена сессии.
const tokenTTL = 24 * time.Hour

type contextKey int

const userIDKey contextKey = iota

// WithAuth читает cookie сессии и кладёт идентификатор пользователя
// в контекст запроса. Отсутствующий или невалидный токен не является
// ошибкой: запрос продолжается анонимным, решение — за хендлером.
func WithAuth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(authCookieName)
			if err == nil && c.Value != "" {
				if uid, err := auth.ParseUserID(c.Value, []byte(secret)); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetLoginCookie выпускает токен сессии и ставит его в cookie ответа.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	token, err := auth.GenerateToken(userID, []byte(secret), tokenTTL)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokenTTL / time.Second),
	})
	return nil
}

// ClearLoginCookie снимает cookie сессии (logout).
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// GetUserIDFromContext возвращает идентификатор пользователя запроса.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
