package services

// EmailValidator проверяет синтаксис адреса. Ошибка означает сбой самого валидатора.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}
