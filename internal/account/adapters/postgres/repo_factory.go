package postgres

import (
	"gogetaccount/internal/account/ports/repositories"
	"gogetaccount/pkg/db/postgres"
)

// RepositoryFactory создает репозитории PostgreSQL.
type RepositoryFactory struct {
	accountRepo repositories.AccountRepository
	logRepo     repositories.LogRepository
}

// NewRepositoryFactory создает фабрику репозиториев поверх пула соединений.
func NewRepositoryFactory(pool postgres.Querier) *RepositoryFactory {
	return &RepositoryFactory{
		accountRepo: NewAccountRepository(pool),
		logRepo:     NewLogRepository(pool),
	}
}

// AccountRepository возвращает репозиторий учетных записей.
func (f *RepositoryFactory) AccountRepository() repositories.AccountRepository {
	return f.accountRepo
}

// LogRepository возвращает репозиторий журнала ошибок.
func (f *RepositoryFactory) LogRepository() repositories.LogRepository {
	return f.logRepo
}
