package service

import (
	"context"
	"errors"
	"fmt"

	"windkey/internal/model"
	"windkey/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService — операции над категориями записей.
type CategoryService struct {
	categories repo.CategoryRepository
	audit      *AuditService
}

// NewCategoryService создаёт сервис категорий.
func NewCategoryService(categories repo.CategoryRepository, audit *AuditService) *CategoryService {
	return &CategoryService{categories: categories, audit: audit}
}

// CategoryInput — данные для создания категории.
type CategoryInput struct {
	Name  string
	Icon  string
	Color string
}

// CategoryUpdate — частичное обновление: nil означает «не трогать».
type CategoryUpdate struct {
	Name  *string
	Icon  *string
	Color *string
}

// Create сохраняет новую категорию пользователя.
func (s *CategoryService) Create(ctx context.Context, userID int64, in CategoryInput, ip string) (*model.Category, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	c := &model.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   in.Name,
		Icon:   in.Icon,
		Color:  in.Color,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "category_created", "name: "+in.Name, ip)
	return c, nil
}

// List возвращает категории пользователя с числом записей в каждой.
func (s *CategoryService) List(ctx context.Context, userID int64) ([]repo.CategoryWithCount, error) {
	return s.categories.ListByUser(ctx, userID)
}

// Update применяет частичное обновление метаданных категории.
func (s *CategoryService) Update(ctx context.Context, userID int64, id string, upd CategoryUpdate, ip string) (*model.Category, error) {
	c, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		updates["name"] = *upd.Name
	}
	if upd.Icon != nil {
		updates["icon"] = *upd.Icon
	}
	if upd.Color != nil {
		updates["color"] = *upd.Color
	}
	if len(updates) == 0 {
		return c, nil
	}

	if err := s.categories.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "category_updated", "name: "+c.Name, ip)
	return s.categories.GetByID(ctx, id)
}

// Delete удаляет категорию владельца. Записи категории остаются в хранилище —
// репозиторий отвязывает их, а не удаляет каскадом.
func (s *CategoryService) Delete(ctx context.Context, userID int64, id, ip string) error {
	c, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, userID, "category_deleted", "name: "+c.Name, ip)
	return nil
}

func (s *CategoryService) getOwned(ctx context.Context, userID int64, id string) (*model.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}
