package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gogetaccount/internal/account/app"
	"gogetaccount/internal/account/domain/entities"
	"gogetaccount/internal/account/domain/services"
)

var (
	ErrHashing  = errors.New("hashing failed")
	ErrDatabase = errors.New("database error")
)

func TestAddAccount(t *testing.T) {
	input := entities.AddAccountModel{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "pw1",
	}
	hashed := entities.AddAccountModel{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "hashed_pw1",
	}
	created := &entities.Account{
		ID:           "a1",
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "hashed_pw1",
	}

	tests := []struct {
		name        string
		setupMocks  func(enc *mockEncrypter, repo *mockAccountRepository)
		expectedRes *entities.Account
		expectedErr error
	}{
		{
			name: "success - password hashed and account stored",
			setupMocks: func(enc *mockEncrypter, repo *mockAccountRepository) {
				enc.On("Encrypt", mock.Anything, "pw1").Return("hashed_pw1", nil).Once()
				repo.On("Add", mock.Anything, hashed).Return(created, nil).Once()
			},
			expectedRes: created,
		},
		{
			name: "error - encryption fails and repository is not called",
			setupMocks: func(enc *mockEncrypter, _ *mockAccountRepository) {
				enc.On("Encrypt", mock.Anything, "pw1").
					Return("", errors.Join(services.ErrEncryptionFailed, ErrHashing)).Once()
			},
			expectedErr: services.ErrEncryptionFailed,
		},
		{
			name: "error - repository fails",
			setupMocks: func(enc *mockEncrypter, repo *mockAccountRepository) {
				enc.On("Encrypt", mock.Anything, "pw1").Return("hashed_pw1", nil).Once()
				repo.On("Add", mock.Anything, hashed).Return(nil, ErrDatabase).Once()
			},
			expectedErr: ErrDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := new(mockEncrypter)
			repo := new(mockAccountRepository)
			tt.setupMocks(enc, repo)

			useCase := app.NewAddAccount(enc, repo)
			res, err := useCase.Add(context.Background(), input)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}

			enc.AssertExpectations(t)
			repo.AssertExpectations(t)
			if tt.expectedErr == services.ErrEncryptionFailed {
				repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAddAccount_EncryptsBeforePersisting(t *testing.T) {
	var order []string

	enc := new(mockEncrypter)
	repo := new(mockAccountRepository)
	enc.On("Encrypt", mock.Anything, "pw1").
		Run(func(mock.Arguments) { order = append(order, "encrypt") }).
		Return("h", nil).Once()
	repo.On("Add", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { order = append(order, "add") }).
		Return(&entities.Account{ID: "a1"}, nil).Once()

	_, err := app.NewAddAccount(enc, repo).Add(context.Background(), entities.AddAccountModel{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "pw1",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"encrypt", "add"}, order)
}
