package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"windkey/internal/breach"
	"windkey/internal/generator"

	"go.uber.org/zap"
)

// ToolsHandler — генератор паролей и проверка по базе утечек.
type ToolsHandler struct {
	Breach *breach.Client
	Logger *zap.SugaredLogger
}

// NewToolsHandler создаёт хендлер вспомогательных операций
func NewToolsHandler(breachClient *breach.Client, logger *zap.SugaredLogger) *ToolsHandler {
	return &ToolsHandler{Breach: breachClient, Logger: logger}
}

// GeneratePassword отдаёт случайный пароль. Классы символов управляются
// query-параметрами upper/lower/digits/special (по умолчанию все включены),
// длина — параметром length и зажимается в допустимые границы.
func (h *ToolsHandler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	length := 16
	if v := q.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid length")
			return
		}
		length = n
	}

	password, err := generator.Generate(
		length,
		boolParam(q.Get("upper"), true),
		boolParam(q.Get("lower"), true),
		boolParam(q.Get("digits"), true),
		boolParam(q.Get("special"), true),
	)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"password": password})
}

type BreachCheckRequest struct {
	Password string `json:"password"`
}

type BreachCheckResponse struct {
	Breached bool `json:"breached"`
	Count    int  `json:"count"`
}

// CheckBreach проверяет пароль по базе утечек. Сам пароль наружу не уходит —
// только префикс его хэша; сбой внешнего сервиса восстановим и не фатален.
func (h *ToolsHandler) CheckBreach(w http.ResponseWriter, r *http.Request) {
	var req BreachCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		writeErrorMessage(w, http.StatusBadRequest, "password is required")
		return
	}

	found, count, err := h.Breach.Check(r.Context(), req.Password)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, BreachCheckResponse{Breached: found, Count: count})
}

func boolParam(v string, def bool) bool {
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
