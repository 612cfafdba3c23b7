package repo

import (
	"context"

	"windkey/internal/model"

	"gorm.io/gorm"
)

// CategoryWithCount — категория плюс производное число записей в ней.
type CategoryWithCount struct {
	model.Category
	PasswordCount int64
}

// CategoryRepository — контракт доступа к категориям.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error

	// ListByUser возвращает категории пользователя с числом записей в каждой.
	ListByUser(ctx context.Context, userID int64) ([]CategoryWithCount, error)

	// GetByID возвращает категорию по идентификатору.
	// Если не найдена — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Category, error)

	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete удаляет категорию, отвязывая её записи: category_id обнуляется,
	// сами записи не трогаются. Каскадного удаления нет намеренно.
	Delete(ctx context.Context, id string) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория категорий.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) ListByUser(ctx context.Context, userID int64) ([]CategoryWithCount, error) {
	var out []CategoryWithCount
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Select("categories.*, count(passwords.id) as password_count").
		Joins("left join passwords on passwords.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id").
		Order("categories.created_at").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Password{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, "id = ?", id).Error
	})
}
