// Package presentation описывает контракт контроллеров: запрос, ответ и дескрипторы ошибок.
package presentation

import "context"

// Request - входящий запрос с полями тела.
type Request struct {
	Body map[string]string
}

// Response - стандартный конверт ответа.
type Response struct {
	StatusCode int
	Body       any
}

// Controller обрабатывает запрос и всегда возвращает ровно один ответ.
type Controller interface {
	Handle(ctx context.Context, request Request) Response
}

// AccessTokenBody - тело успешного ответа на вход.
type AccessTokenBody struct {
	AccessToken string `json:"accessToken"`
}
