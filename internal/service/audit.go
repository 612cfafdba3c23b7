package service

import (
	"context"

	"windkey/internal/model"
	"windkey/internal/repo"

	"go.uber.org/zap"
)

// AuditService ведёт журнал действий пользователя.
type AuditService struct {
	history repo.HistoryRepository
	logger  *zap.SugaredLogger
}

// NewAuditService создаёт сервис журнала.
func NewAuditService(history repo.HistoryRepository, logger *zap.SugaredLogger) *AuditService {
	return &AuditService{history: history, logger: logger}
}

// Record добавляет запись в журнал. Запись — best effort: сбой журналирования
// логируется, но не откатывает и не блокирует основную операцию, которая к
// этому моменту уже завершилась.
func (s *AuditService) Record(ctx context.Context, userID int64, action, details, ip string) {
	err := s.history.Create(ctx, &model.History{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	})
	if err != nil {
		s.logger.Errorw("audit write failed", "action", action, "user_id", userID, "error", err)
	}
}

// List возвращает журнал пользователя, новые записи первыми.
func (s *AuditService) List(ctx context.Context, userID int64) ([]model.History, error) {
	return s.history.ListByUser(ctx, userID)
}
