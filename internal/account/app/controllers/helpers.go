// Package controllers реализует контроллеры регистрации и входа и отображение
// результатов в конверт ответа.
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"gogetaccount/internal/account/ports/presentation"
)

// ErrPanic оборачивает значение паники, пойманной контроллером.
var ErrPanic = errors.New("controller panic")

// BadRequest - 400 с дескриптором ошибки валидации.
func BadRequest(descriptor *presentation.ErrorDescriptor) presentation.Response {
	return presentation.Response{StatusCode: http.StatusBadRequest, Body: descriptor}
}

// Unauthorized - 401.
func Unauthorized() presentation.Response {
	return presentation.Response{StatusCode: http.StatusUnauthorized, Body: presentation.UnauthorizedError()}
}

// InternalServerError - 500; полная трассировка сохраняется в дескрипторе, клиенту уходит
// только общее сообщение.
func InternalServerError(err error) presentation.Response {
	return presentation.Response{
		StatusCode: http.StatusInternalServerError,
		Body:       presentation.InternalServerError(fmt.Sprintf("%+v", err)),
	}
}

// OK - 200 с полезной нагрузкой.
func OK(data any) presentation.Response {
	return presentation.Response{StatusCode: http.StatusOK, Body: data}
}

// failValidation различает отказ валидации (400) и сбой самого валидатора (500).
func failValidation(err error) presentation.Response {
	if descriptor, ok := presentation.AsDescriptor(err); ok {
		return BadRequest(descriptor)
	}
	return InternalServerError(err)
}

// recoverPanic превращает панику в ответ 500.
func recoverPanic(response *presentation.Response) {
	if r := recover(); r != nil {
		*response = InternalServerError(fmt.Errorf("%w: %v", ErrPanic, r))
	}
}
