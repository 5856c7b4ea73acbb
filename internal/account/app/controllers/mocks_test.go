package controllers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gogetaccount/internal/account/domain/entities"
)

type mockEmailValidator struct {
	mock.Mock
}

func (m *mockEmailValidator) IsValid(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

type mockAddAccount struct {
	mock.Mock
}

func (m *mockAddAccount) Add(ctx context.Context, account entities.AddAccountModel) (*entities.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

type mockAuthentication struct {
	mock.Mock
}

func (m *mockAuthentication) Auth(ctx context.Context, credentials entities.Credentials) (string, error) {
	args := m.Called(ctx, credentials)
	return args.String(0), args.Error(1)
}
