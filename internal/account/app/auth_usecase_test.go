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

var ErrAuthenticator = errors.New("authenticator unavailable")

func TestAuth(t *testing.T) {
	credentials := entities.Credentials{Email: "ann@x.com", Password: "pw1"}

	tests := []struct {
		name          string
		token         string
		authErr       error
		expectedToken string
		expectedErr   error
	}{
		{
			name:          "success - token returned",
			token:         "tok",
			expectedToken: "tok",
		},
		{
			name:          "no match - empty token without error",
			token:         services.NoToken,
			expectedToken: services.NoToken,
		},
		{
			name:          "error - authenticator fails",
			authErr:       ErrAuthenticator,
			expectedToken: services.NoToken,
			expectedErr:   ErrAuthenticator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticator := new(mockAuthenticator)
			authenticator.On("Authenticate", mock.Anything, credentials).Return(tt.token, tt.authErr).Once()

			token, err := app.NewAuthentication(authenticator).Auth(context.Background(), credentials)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedToken, token)
			authenticator.AssertExpectations(t)
		})
	}
}
