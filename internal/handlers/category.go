package handlers

import (
	"encoding/json"
	"net/http"

	"windkey/internal/repo"
	"windkey/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryHandler обрабатывает категории записей.
type CategoryHandler struct {
	CategoryService *service.CategoryService
	Logger          *zap.SugaredLogger
}

// NewCategoryHandler создаёт хендлер категорий
func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{CategoryService: categoryService, Logger: logger}
}

// CategoryDTO — категория с производным числом записей.
type CategoryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	PasswordCount int64  `json:"password_count"`
}

type CategoryCreateRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type CategoryUpdateRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// List отдаёт категории пользователя с числом записей в каждой.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	cats, err := h.CategoryService.List(r.Context(), uid)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	out := make([]CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func categoryDTO(c repo.CategoryWithCount) CategoryDTO {
	return CategoryDTO{
		ID:            c.ID,
		Name:          c.Name,
		Icon:          c.Icon,
		Color:         c.Color,
		PasswordCount: c.PasswordCount,
	}
}

// Create создаёт категорию.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CategoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create category: invalid request body", "error", err)
		writeErrorMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	c, err := h.CategoryService.Create(r.Context(), uid, service.CategoryInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}, clientIP(r))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, CategoryDTO{
		ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color,
	})
}

// Update частично обновляет метаданные категории.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CategoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update category: invalid request body", "error", err)
		writeErrorMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	c, err := h.CategoryService.Update(r.Context(), uid, chi.URLParam(r, "id"), service.CategoryUpdate{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}, clientIP(r))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, CategoryDTO{
		ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color,
	})
}

// Delete удаляет категорию; её записи остаются без категории.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.CategoryService.Delete(r.Context(), uid, chi.URLParam(r, "id"), clientIP(r)); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
