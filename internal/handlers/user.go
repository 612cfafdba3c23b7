package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"windkey/internal/config"
	"windkey/internal/middleware"
	"windkey/internal/service"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход/выход и журнал действий.
type UserHandler struct {
	UserService  *service.UserService
	AuditService *service.AuditService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, auditService *service.AuditService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, AuditService: auditService, Logger: logger, Config: cfg}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse — материалы для подключения 2FA. Выдаются один раз,
// повторно секрет не отображается.
type RegisterResponse struct {
	Message         string `json:"message"`
	TwoFactorSecret string `json:"two_factor_secret"`
	ProvisioningURI string `json:"provisioning_uri"`
	QRCode          string `json:"qr_code"` // PNG, base64
}

type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"two_factor_code"`
}

// Register регистрация нового пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeErrorMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	enr, err := h.UserService.Register(r.Context(), req.Email, req.Password, clientIP(r))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		Message:         "Registration successful",
		TwoFactorSecret: enr.TwoFactorSecret,
		ProvisioningURI: enr.ProvisioningURI,
		QRCode:          base64.StdEncoding.EncodeToString(enr.QRCode),
	})
}

// Login вход: пароль + одноразовый код. Успех устанавливает cookie сессии.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeErrorMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password, req.TwoFactorCode, clientIP(r))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

// Logout снимает cookie сессии.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.AuditService.Record(r.Context(), uid, "logout", "session closed", clientIP(r))
	}
	middleware.ClearLoginCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// HistoryEntryDTO — запись журнала в ответе API.
type HistoryEntryDTO struct {
	ID        int64  `json:"id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	IPAddress string `json:"ip_address"`
	Timestamp string `json:"timestamp"`
}

// History отдаёт журнал действий пользователя, новые записи первыми.
func (h *UserHandler) History(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries, err := h.AuditService.List(r.Context(), uid)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	out := make([]HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryDTO{
			ID:        e.ID,
			Action:    e.Action,
			Details:   e.Details,
			IPAddress: e.IPAddress,
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
