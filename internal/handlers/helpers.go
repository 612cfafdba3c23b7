package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"windkey/internal/breach"
	"windkey/internal/crypto"
	"windkey/internal/generator"
	"windkey/internal/middleware"
	"windkey/internal/service"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError отображает ошибки сервисного слоя в HTTP-статусы.
// Детали криптографических и внутренних сбоев в ответ не попадают.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		writeErrorMessage(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, generator.ErrInvalidCharset):
		writeErrorMessage(w, http.StatusBadRequest, "no character classes enabled")
	case errors.Is(err, service.ErrBadCredentials):
		// единый ответ: не раскрываем, какой из факторов не прошёл
		writeErrorMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrForbidden):
		writeErrorMessage(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, service.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, breach.ErrServiceUnavailable):
		// отдельное сообщение: вызывающий может повторить запрос
		logger.Errorw("breach check failed", "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "breach check unavailable, try again")
	case errors.Is(err, crypto.ErrInvalidCiphertext), errors.Is(err, crypto.ErrKeyUnavailable):
		logger.Errorw("crypto failure", "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "encryption error")
	default:
		logger.Errorw("internal error", "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

// requireUser достаёт идентификатор пользователя из контекста;
// анонимный запрос получает 401.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return uid, true
}

// clientIP возвращает адрес источника запроса для журнала действий.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
