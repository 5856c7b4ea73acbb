// Package entities содержит сущности домена учетных записей.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена учетных записей.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("account with this email already exists")
)

// Account - учетная запись. ID назначается репозиторием при создании и больше не меняется.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
}

// AddAccountModel - данные для создания учетной записи.
type AddAccountModel struct {
	Name     string
	Email    string
	Password string
}

// Credentials - учетные данные для входа.
type Credentials struct {
	Email    string
	Password string
}
