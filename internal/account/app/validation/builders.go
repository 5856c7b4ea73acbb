package validation

import "gogetaccount/internal/account/ports/services"

// Поля запросов.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "passwordConfirmation"
)

// Build собирает цепочку, в которой проверки обязательных полей идут первыми.
// Остальные правила могут разыменовывать только перечисленные required поля.
func Build(required []string, rules ...Validation) *Composite {
	validations := make([]Validation, 0, len(required)+len(rules))
	for _, field := range required {
		validations = append(validations, RequiredField{Field: field})
	}
	return NewComposite(append(validations, rules...)...)
}

// NewSignUpValidation - цепочка для регистрации.
func NewSignUpValidation(emailValidator services.EmailValidator) *Composite {
	return Build(
		[]string{FieldName, FieldEmail, FieldPassword, FieldPasswordConfirmation},
		CompareFields{Field: FieldPassword, FieldToCompare: FieldPasswordConfirmation},
		EmailField{Field: FieldEmail, Validator: emailValidator},
	)
}

// NewLoginValidation - цепочка для входа.
func NewLoginValidation(emailValidator services.EmailValidator) *Composite {
	return Build(
		[]string{FieldEmail, FieldPassword},
		EmailField{Field: FieldEmail, Validator: emailValidator},
	)
}
