package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"windkey/internal/breach"
	"windkey/internal/config"
	"windkey/internal/handlers"
	"windkey/internal/middleware"
	"windkey/internal/model"
	"windkey/internal/repo"
	"windkey/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockPasswordRepo struct{ mock.Mock }

func (m *mockPasswordRepo) Create(ctx context.Context, p *model.Password) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPasswordRepo) ListByUser(ctx context.Context, userID int64) ([]model.Password, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Password); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPasswordRepo) GetByID(ctx context.Context, id string) (*model.Password, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Password); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPasswordRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockPasswordRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.PasswordRepository = (*mockPasswordRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCategoryRepo) ListByUser(ctx context.Context, userID int64) ([]repo.CategoryWithCount, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]repo.CategoryWithCount); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockHistoryRepo struct{ mock.Mock }

func (m *mockHistoryRepo) Create(ctx context.Context, h *model.History) error {
	return m.Called(ctx, h).Error(0)
}
func (m *mockHistoryRepo) ListByUser(ctx context.Context, userID int64) ([]model.History, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.History); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.HistoryRepository = (*mockHistoryRepo)(nil)

// --- Helpers ---

// testEnv — роутер поверх реальных сервисов и мок-репозиториев.
type testEnv struct {
	router     http.Handler
	cfg        *config.Config
	key        []byte
	users      *mockUserRepo
	passwords  *mockPasswordRepo
	categories *mockCategoryRepo
	history    *mockHistoryRepo
}

func newTestEnv(t *testing.T, breachURL string) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", TOTPIssuer: "WindKey"}
	logger := zap.NewNop().Sugar()

	env := &testEnv{
		cfg:        cfg,
		key:        make([]byte, 32),
		users:      &mockUserRepo{},
		passwords:  &mockPasswordRepo{},
		categories: &mockCategoryRepo{},
		history:    &mockHistoryRepo{},
	}
	// журнал пишется попутно почти каждой операцией
	env.history.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

	auditSvc := service.NewAuditService(env.history, logger)
	userSvc := service.NewUserService(env.users, auditSvc, cfg.TOTPIssuer)
	vaultSvc := service.NewVaultService(env.passwords, env.key, auditSvc)
	categorySvc := service.NewCategoryService(env.categories, auditSvc)
	breachClient := breach.NewClient(breachURL)

	h := handlers.NewHandler(userSvc, vaultSvc, categorySvc, auditSvc, breachClient, logger, cfg)
	env.router = h.Router
	return env
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
