package repo

import (
	"context"

	"windkey/internal/model"

	"gorm.io/gorm"
)

// PasswordRepository — контракт доступа к записям хранилища.
// Проверка владельца — забота сервисного слоя: репозиторий достаёт строку
// по ID, чтобы сервис мог отличить «нет такой» (404) от «чужая» (403).
type PasswordRepository interface {
	Create(ctx context.Context, p *model.Password) error

	// ListByUser возвращает записи пользователя, новые сверху.
	ListByUser(ctx context.Context, userID int64) ([]model.Password, error)

	// GetByID возвращает запись по идентификатору.
	// Если не найдена — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Password, error)

	// Update применяет частичное обновление по карте колонок.
	Update(ctx context.Context, id string, updates map[string]any) error

	Delete(ctx context.Context, id string) error
}

type passwordRepo struct {
	db *gorm.DB
}

// NewPasswordRepository создаёт реализацию репозитория записей.
func NewPasswordRepository(db *gorm.DB) PasswordRepository {
	return &passwordRepo{db: db}
}

func (r *passwordRepo) Create(ctx context.Context, p *model.Password) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *passwordRepo) ListByUser(ctx context.Context, userID int64) ([]model.Password, error) {
	var out []model.Password
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *passwordRepo) GetByID(ctx context.Context, id string) (*model.Password, error) {
	var p model.Password
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *passwordRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Password{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *passwordRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Password{}, "id = ?", id).Error
}
