// Package services содержит адаптеры криптографии, выпуска токенов и проверки email.
package services

import (
	"gogetaccount/internal/account/domain/services"
	ports "gogetaccount/internal/account/ports/services"
)

// ServiceFactory создает адаптеры сервисов учетных записей.
type ServiceFactory struct {
	bcrypt         *ServiceBcrypt
	tokenGenerator ports.TokenGenerator
	emailValidator ports.EmailValidator
}

// NewServiceFactory создает фабрику сервисов.
func NewServiceFactory(tokenCfg services.TokenConfig, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		bcrypt:         NewBcrypt(bcryptCost),
		tokenGenerator: NewJWT(tokenCfg),
		emailValidator: NewEmailValidator(),
	}
}

func (f *ServiceFactory) Encrypter() ports.Encrypter {
	return f.bcrypt
}

func (f *ServiceFactory) HashComparer() ports.HashComparer {
	return f.bcrypt
}

func (f *ServiceFactory) TokenGenerator() ports.TokenGenerator {
	return f.tokenGenerator
}

func (f *ServiceFactory) EmailValidator() ports.EmailValidator {
	return f.emailValidator
}
