package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"windkey/internal/model"
	"windkey/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VaultHandler обрабатывает записи хранилища.
type VaultHandler struct {
	VaultService *service.VaultService
	Logger       *zap.SugaredLogger
}

// NewVaultHandler создаёт хендлер записей
func NewVaultHandler(vaultService *service.VaultService, logger *zap.SugaredLogger) *VaultHandler {
	return &VaultHandler{VaultService: vaultService, Logger: logger}
}

// PasswordDTO — запись хранилища в ответе API. Поле Password заполняется
// только в выдаче одной записи; списки секретов не содержат.
type PasswordDTO struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Notes      string  `json:"notes"`
	CategoryID *string `json:"category_id"`
	Password   string  `json:"password,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func passwordDTO(p *model.Password, secret string) PasswordDTO {
	return PasswordDTO{
		ID:         p.ID,
		Title:      p.Title,
		URL:        p.URL,
		Notes:      p.Notes,
		CategoryID: p.CategoryID,
		Password:   secret,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type PasswordCreateRequest struct {
	Title      string  `json:"title"`
	Password   string  `json:"password"`
	URL        string  `json:"url"`
	Notes      string  `json:"notes"`
	CategoryID *string `json:"category_id"`
}

// PasswordUpdateRequest — частичное обновление: отсутствующие поля не
// трогаются, пустой category_id отвязывает запись от категории.
type PasswordUpdateRequest struct {
	Title      *string `json:"title"`
	Password   *string `json:"password"`
	URL        *string `json:"url"`
	Notes      *string `json:"notes"`
	CategoryID *string `json:"category_id"`
}

// List отдаёт записи пользователя без секретных значений.
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.VaultService.List(r.Context(), uid)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	out := make([]PasswordDTO, 0, len(items))
	for i := range items {
		out = append(out, passwordDTO(&items[i], ""))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create создаёт запись: секрет шифруется сервисом хранилища.
func (h *VaultHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req PasswordCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create password: invalid request body", "error", err)
		writeErrorMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	p, err := h.VaultService.Create(r.Context(), uid, service.PasswordInput{
		Title:      req.Title,
		Secret:     req.Password,
		URL:        req.URL,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
	}, clientIP(r))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, passwordDTO(p, ""))
}

// Get отдаёт одну запись вместе с расшифрованным секретом.
func (h *VaultHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	p, secret, err := h.VaultService.Get(r.Context(), uid, chi.URLParam(r, "id"), clientIP(r))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, passwordDTO(p, secret))
}

// Update частично обновляет запись.
func (h *VaultHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req PasswordUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update password: invalid request body", "error", err)
		writeErrorMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	p, err := h.VaultService.Update(r.Context(), uid, chi.URLParam(r, "id"), service.PasswordUpdate{
		Title:      req.Title,
		Secret:     req.Password,
		URL:        req.URL,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
	}, clientIP(r))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, passwordDTO(p, ""))
}

// Delete удаляет запись.
func (h *VaultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.VaultService.Delete(r.Context(), uid, chi.URLParam(r, "id"), clientIP(r)); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password deleted successfully"})
}
