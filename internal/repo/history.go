package repo

import (
	"context"

	"windkey/internal/model"

	"gorm.io/gorm"
)

// HistoryRepository — контракт доступа к журналу действий. Записи только
// добавляются; обновления и удаления не предусмотрены.
type HistoryRepository interface {
	Create(ctx context.Context, h *model.History) error

	// ListByUser возвращает журнал пользователя, новые записи первыми.
	ListByUser(ctx context.Context, userID int64) ([]model.History, error)
}

type historyRepo struct {
	db *gorm.DB
}

// NewHistoryRepository создаёт реализацию репозитория журнала.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) Create(ctx context.Context, h *model.History) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historyRepo) ListByUser(ctx context.Context, userID int64) ([]model.History, error) {
	var out []model.History
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
