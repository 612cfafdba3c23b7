package service

import (
	"context"
	"errors"
	"fmt"

	"windkey/internal/crypto"
	"windkey/internal/model"
	"windkey/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VaultService — операции над записями хранилища. Единственное место, где
// секретные значения превращаются в шифртекст и обратно; до проверки
// владельца никакая расшифровка не выполняется.
type VaultService struct {
	passwords repo.PasswordRepository
	key       []byte
	audit     *AuditService
}

// NewVaultService создаёт сервис хранилища с процессным ключом шифрования.
func NewVaultService(passwords repo.PasswordRepository, key []byte, audit *AuditService) *VaultService {
	return &VaultService{passwords: passwords, key: key, audit: audit}
}

// PasswordInput — данные для создания записи. Secret — единственное поле,
// которое уходит в БД в зашифрованном виде.
type PasswordInput struct {
	Title      string
	Secret     string
	URL        string
	Notes      string
	CategoryID *string
}

// PasswordUpdate — частичное обновление: nil означает «не трогать».
// Пустая строка в CategoryID отвязывает запись от категории.
type PasswordUpdate struct {
	Title      *string
	Secret     *string
	URL        *string
	Notes      *string
	CategoryID *string
}

// Create шифрует секрет и сохраняет новую запись.
func (s *VaultService) Create(ctx context.Context, userID int64, in PasswordInput, ip string) (*model.Password, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Secret == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	cipher, nonce, err := crypto.Encrypt([]byte(in.Secret), s.key)
	if err != nil {
		return nil, err
	}

	p := &model.Password{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: normalizeCategoryID(in.CategoryID),
		Title:      in.Title,
		Cipher:     cipher,
		Nonce:      nonce,
		URL:        in.URL,
		Notes:      in.Notes,
	}
	if err := s.passwords.Create(ctx, p); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "password_created", "title: "+in.Title, ip)
	return p, nil
}

// List возвращает записи пользователя без секретных значений:
// расшифровка в списочной выдаче не выполняется.
func (s *VaultService) List(ctx context.Context, userID int64) ([]model.Password, error) {
	return s.passwords.ListByUser(ctx, userID)
}

// Get возвращает запись вместе с расшифрованным секретом.
func (s *VaultService) Get(ctx context.Context, userID int64, id, ip string) (*model.Password, string, error) {
	p, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	plain, err := crypto.Decrypt(p.Cipher, p.Nonce, s.key)
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(ctx, userID, "password_viewed", "title: "+p.Title, ip)
	return p, string(plain), nil
}

// Update применяет частичное обновление; новый секрет перешифровывается,
// updated_at обновляется при любой мутации.
func (s *VaultService) Update(ctx context.Context, userID int64, id string, upd PasswordUpdate, ip string) (*model.Password, error) {
	p, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		updates["title"] = *upd.Title
	}
	if upd.Secret != nil {
		if *upd.Secret == "" {
			return nil, fmt.Errorf("%w: password must not be empty", ErrValidation)
		}
		cipher, nonce, err := crypto.Encrypt([]byte(*upd.Secret), s.key)
		if err != nil {
			return nil, err
		}
		updates["cipher"] = cipher
		updates["nonce"] = nonce
	}
	if upd.URL != nil {
		updates["url"] = *upd.URL
	}
	if upd.Notes != nil {
		updates["notes"] = *upd.Notes
	}
	if upd.CategoryID != nil {
		updates["category_id"] = normalizeCategoryID(upd.CategoryID)
	}
	if len(updates) == 0 {
		return p, nil
	}

	if err := s.passwords.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "password_updated", "title: "+p.Title, ip)
	return s.passwords.GetByID(ctx, id)
}

// Delete удаляет запись владельца.
func (s *VaultService) Delete(ctx context.Context, userID int64, id, ip string) error {
	p, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.passwords.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, userID, "password_deleted", "title: "+p.Title, ip)
	return nil
}

// getOwned достаёт запись и проверяет владельца. Чужая запись даёт
// ErrForbidden до любых расшифровок и изменений.
func (s *VaultService) getOwned(ctx context.Context, userID int64, id string) (*model.Password, error) {
	p, err := s.passwords.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}
	return p, nil
}

// normalizeCategoryID приводит пустую строку к nil (отвязка от категории).
func normalizeCategoryID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
