package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gogetaccount/internal/account/domain/entities"
)

type mockEncrypter struct {
	mock.Mock
}

func (m *mockEncrypter) Encrypt(ctx context.Context, value string) (string, error) {
	args := m.Called(ctx, value)
	return args.String(0), args.Error(1)
}

type mockHashComparer struct {
	mock.Mock
}

func (m *mockHashComparer) Compare(ctx context.Context, value, hash string) (bool, error) {
	args := m.Called(ctx, value, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenGenerator struct {
	mock.Mock
}

func (m *mockTokenGenerator) Generate(ctx context.Context, accountID string) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, credentials entities.Credentials) (string, error) {
	args := m.Called(ctx, credentials)
	return args.String(0), args.Error(1)
}

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) Add(ctx context.Context, account entities.AddAccountModel) (*entities.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entities.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

type mockAccessTokenRepository struct {
	mock.Mock
}

func (m *mockAccessTokenRepository) Store(ctx context.Context, accountID, token string) error {
	args := m.Called(ctx, accountID, token)
	return args.Error(0)
}
