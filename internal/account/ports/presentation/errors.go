package presentation

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку, попадающую в тело ответа.
type Kind string

// Виды ошибок.
const (
	KindMissingParam   Kind = "MissingParam"
	KindInvalidParam   Kind = "InvalidParam"
	KindUnauthorized   Kind = "Unauthorized"
	KindInternalServer Kind = "InternalServer"
)

const (
	msgMissingParam   = "missing param: %s"
	msgInvalidParam   = "invalid param: %s"
	msgUnauthorized   = "unauthorized"
	msgInternalServer = "internal server error"
)

// ErrorDescriptor - ошибка, которую видит клиент. Trace заполняется только для
// KindInternalServer и в тело ответа не сериализуется.
type ErrorDescriptor struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"error"`
	Trace   string `json:"-"`
}

func (e *ErrorDescriptor) Error() string {
	return e.Message
}

// MissingParamError - обязательное поле не передано.
func MissingParamError(field string) *ErrorDescriptor {
	return &ErrorDescriptor{Kind: KindMissingParam, Field: field, Message: fmt.Sprintf(msgMissingParam, field)}
}

// InvalidParamError - поле передано, но некорректно.
func InvalidParamError(field string) *ErrorDescriptor {
	return &ErrorDescriptor{Kind: KindInvalidParam, Field: field, Message: fmt.Sprintf(msgInvalidParam, field)}
}

// UnauthorizedError - учетные данные отклонены.
func UnauthorizedError() *ErrorDescriptor {
	return &ErrorDescriptor{Kind: KindUnauthorized, Message: msgUnauthorized}
}

// InternalServerError - непредвиденный сбой; trace уходит только в лог.
func InternalServerError(trace string) *ErrorDescriptor {
	return &ErrorDescriptor{Kind: KindInternalServer, Message: msgInternalServer, Trace: trace}
}

// AsDescriptor извлекает дескриптор из цепочки ошибок.
func AsDescriptor(err error) (*ErrorDescriptor, bool) {
	var descriptor *ErrorDescriptor
	if errors.As(err, &descriptor) {
		return descriptor, true
	}
	return nil, false
}
