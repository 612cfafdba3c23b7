package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"windkey/internal/auth"
	"windkey/internal/model"
	"windkey/internal/repo"

	"gorm.io/gorm"
)

// qrSize — размер PNG с QR-кодом для регистрации секрета (в пикселях).
const qrSize = 200

// UserService — регистрация и вход: пароль плюс одноразовый код.
type UserService struct {
	users  repo.UserRepository
	audit  *AuditService
	issuer string
}

// NewUserService создаёт сервис пользователей. issuer попадает в
// otpauth-ссылку и отображается в приложении-аутентификаторе.
func NewUserService(users repo.UserRepository, audit *AuditService, issuer string) *UserService {
	return &UserService{users: users, audit: audit, issuer: issuer}
}

// Enrollment — результат регистрации: данные для подключения 2FA.
// Пароль пользователя сюда не попадает ни в каком виде.
type Enrollment struct {
	User            *model.User
	TwoFactorSecret string
	ProvisioningURI string
	QRCode          []byte // PNG
}

// Register создаёт учётную запись: хэширует пароль, выпускает секрет 2FA
// и один раз отдаёт материалы для его регистрации.
func (s *UserService) Register(ctx context.Context, email, password, ip string) (*Enrollment, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrValidation)
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	secret, err := auth.GenerateTOTPSecret()
	if err != nil {
		return nil, err
	}
	uri := auth.ProvisioningURI(secret, email, s.issuer)
	qr, err := auth.QRCodePNG(uri, qrSize)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		Email:           email,
		PasswordHash:    hash,
		TwoFactorSecret: secret,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, user.ID, "register", "account created", ip)

	return &Enrollment{
		User:            user,
		TwoFactorSecret: secret,
		ProvisioningURI: uri,
		QRCode:          qr,
	}, nil
}

// Login проверяет пароль и одноразовый код. Любой сбой проверки даёт
// ErrBadCredentials — ответ не раскрывает, существует ли учётная запись
// и какой из факторов не прошёл.
func (s *UserService) Login(ctx context.Context, email, password, code, ip string) (*model.User, error) {
	if email == "" || password == "" || code == "" {
		return nil, fmt.Errorf("%w: email, password and two_factor_code are required", ErrValidation)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}
	if !auth.VerifyTOTP(user.TwoFactorSecret, code) {
		return nil, ErrBadCredentials
	}

	s.audit.Record(ctx, user.ID, "login", "successful login", ip)
	return user, nil
}
