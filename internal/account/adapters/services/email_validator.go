package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"gogetaccount/internal/account/domain/services"
)

const emailTag = "required,email"

// EmailValidator проверяет синтаксис email через go-playground/validator.
type EmailValidator struct {
	validate *validator.Validate
}

func NewEmailValidator() *EmailValidator {
	return &EmailValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// IsValid возвращает false без ошибки для некорректного адреса. Ошибка означает сбой самого валидатора.
func (v *EmailValidator) IsValid(email string) (valid bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			valid, err = false, fmt.Errorf("%w: %v", services.ErrEmailValidation, r)
		}
	}()

	if err := v.validate.Var(email, emailTag); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", services.ErrEmailValidation, err)
	}

	return true, nil
}
