package service

import (
	"context"

	"windkey/internal/model"
	"windkey/internal/repo"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев для тестов сервисного слоя

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
	args := m.Called(ctx, p)
	return args.Error(0)
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
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *mockPasswordRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.PasswordRepository = (*mockPasswordRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
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
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockHistoryRepo struct{ mock.Mock }

func (m *mockHistoryRepo) Create(ctx context.Context, h *model.History) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *mockHistoryRepo) ListByUser(ctx context.Context, userID int64) ([]model.History, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.History); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.HistoryRepository = (*mockHistoryRepo)(nil)
