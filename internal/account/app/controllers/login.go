package controllers

import (
	"context"

	"go.uber.org/zap"

	"gogetaccount/internal/account/app/validation"
	"gogetaccount/internal/account/domain/entities"
	"gogetaccount/internal/account/domain/services"
	"gogetaccount/internal/account/ports/api"
	"gogetaccount/internal/account/ports/presentation"
	"gogetaccount/pkg/logger"
)

const (
	methodLogin = "LoginController.Handle"

	msgLoginRejected = "login request rejected"
	msgLoginFailed   = "login failed"
)

// LoginController выдает токен доступа по email и паролю.
type LoginController struct {
	validation     validation.Validation
	authentication api.Authentication
}

// NewLoginController создает контроллер входа.
func NewLoginController(v validation.Validation, authentication api.Authentication) *LoginController {
	return &LoginController{
		validation:     v,
		authentication: authentication,
	}
}

func (c *LoginController) Handle(ctx context.Context, request presentation.Request) (response presentation.Response) {
	defer recoverPanic(&response)

	log := logger.Log(ctx).With(zap.String("method", methodLogin))

	if err := c.validation.Validate(request.Body); err != nil {
		log.Debug(ctx, msgLoginRejected, zap.Error(err))
		return failValidation(err)
	}

	token, err := c.authentication.Auth(ctx, entities.Credentials{
		Email:    request.Body[validation.FieldEmail],
		Password: request.Body[validation.FieldPassword],
	})
	if err != nil {
		log.Error(ctx, msgLoginFailed, zap.Error(err))
		return InternalServerError(err)
	}

	if token == services.NoToken {
		return Unauthorized()
	}

	return OK(presentation.AccessTokenBody{AccessToken: token})
}
