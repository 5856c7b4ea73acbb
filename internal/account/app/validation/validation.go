// Package validation содержит цепочку валидаторов тела запроса.
// Цепочка останавливается на первой ошибке.
package validation

import (
	"fmt"

	"gogetaccount/internal/account/ports/presentation"
	"gogetaccount/internal/account/ports/services"
)

const errCtxValidatingEmail = "validating email"

// Validation проверяет поля запроса. nil означает, что проверка пройдена.
type Validation interface {
	Validate(input map[string]string) error
}

// Func позволяет использовать функцию как Validation.
type Func func(input map[string]string) error

// Validate вызывает саму функцию.
func (f Func) Validate(input map[string]string) error {
	return f(input)
}

// RequiredField требует непустое значение поля.
type RequiredField struct {
	Field string
}

// Validate возвращает MissingParam, если поля нет или оно пустое.
func (v RequiredField) Validate(input map[string]string) error {
	if input[v.Field] == "" {
		return presentation.MissingParamError(v.Field)
	}
	return nil
}

// CompareFields требует совпадения двух полей. Ошибка указывает на FieldToCompare.
type CompareFields struct {
	Field          string
	FieldToCompare string
}

// Validate возвращает InvalidParam(FieldToCompare) при расхождении значений.
func (v CompareFields) Validate(input map[string]string) error {
	if input[v.Field] != input[v.FieldToCompare] {
		return presentation.InvalidParamError(v.FieldToCompare)
	}
	return nil
}

// EmailField делегирует проверку адреса EmailValidator.
type EmailField struct {
	Field     string
	Validator services.EmailValidator
}

// Validate возвращает InvalidParam(Field) для неверного адреса.
// Сбой валидатора возвращается как обычная ошибка, а не дескриптор.
func (v EmailField) Validate(input map[string]string) error {
	valid, err := v.Validator.IsValid(input[v.Field])
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if !valid {
		return presentation.InvalidParamError(v.Field)
	}
	return nil
}

// Composite выполняет валидаторы в объявленном порядке.
type Composite struct {
	validations []Validation
}

// NewComposite собирает цепочку.
func NewComposite(validations ...Validation) *Composite {
	return &Composite{validations: validations}
}

// Validate возвращает первую ошибку цепочки.
func (c *Composite) Validate(input map[string]string) error {
	for _, v := range c.validations {
		if err := v.Validate(input); err != nil {
			return err
		}
	}
	return nil
}
