package controllers

import (
	"context"

	"go.uber.org/zap"

	"gogetaccount/internal/account/app/validation"
	"gogetaccount/internal/account/domain/entities"
	"gogetaccount/internal/account/ports/api"
	"gogetaccount/internal/account/ports/presentation"
	"gogetaccount/pkg/logger"
)

const (
	methodSignUp = "SignUpController.Handle"

	msgSignUpRejected = "signup request rejected"
	msgSignUpFailed   = "signup failed"
)

// SignUpController регистрирует новую учетную запись.
type SignUpController struct {
	validation validation.Validation
	addAccount api.AddAccount
}

// NewSignUpController создает контроллер регистрации.
func NewSignUpController(v validation.Validation, addAccount api.AddAccount) *SignUpController {
	return &SignUpController{
		validation: v,
		addAccount: addAccount,
	}
}

// Handle проверяет тело, отбрасывает passwordConfirmation и создает учетную запись.
func (c *SignUpController) Handle(ctx context.Context, request presentation.Request) (response presentation.Response) {
	defer recoverPanic(&response)

	log := logger.Log(ctx).With(zap.String("method", methodSignUp))

	if err := c.validation.Validate(request.Body); err != nil {
		log.Debug(ctx, msgSignUpRejected, zap.Error(err))
		return failValidation(err)
	}

	account, err := c.addAccount.Add(ctx, entities.AddAccountModel{
		Name:     request.Body[validation.FieldName],
		Email:    request.Body[validation.FieldEmail],
		Password: request.Body[validation.FieldPassword],
	})
	if err != nil {
		log.Error(ctx, msgSignUpFailed, zap.Error(err))
		return InternalServerError(err)
	}

	return OK(account)
}
