// Package postgres реализует репозитории учетных записей и журнала ошибок на PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"gogetaccount/internal/account/domain/entities"
	"gogetaccount/internal/account/domain/services"
	"gogetaccount/pkg/db/postgres"
	"gogetaccount/pkg/logger"
)

// uniqueViolation - SQLSTATE нарушения уникального индекса.
const uniqueViolation = "23505"

const (
	repoAccount = "account"

	msgAccountNotFound    = "account not found"
	msgEmailAlreadyExists = "email already registered"
	msgErrCreateAccount   = "error creating account"
	msgErrFindByEmail     = "error finding account by email"

	errCtxCreatingAccount = "error creating account"
	errCtxQueryingByEmail = "error querying account by email"
)

// AccountRepository реализует repositories.AccountRepository.
type AccountRepository struct {
	pool postgres.Querier
}

// NewAccountRepository создает репозиторий учетных записей.
func NewAccountRepository(pool postgres.Querier) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Add сохраняет учетную запись; account.Password уже должен быть хэшем.
func (r *AccountRepository) Add(ctx context.Context, account entities.AddAccountModel) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("repository", repoAccount), zap.String("method", "Add"))

	query := `
        INSERT INTO accounts (name, email, password)
        VALUES ($1, $2, $3)
        RETURNING id, name, email, password, created_at
    `

	var created entities.Account
	err := r.pool.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.Password,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.PasswordHash,
		&created.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			log.Debug(ctx, msgEmailAlreadyExists, zap.String("email", account.Email))
			return nil, fmt.Errorf("%s: %w: %w", errCtxCreatingAccount, services.ErrPersistenceFailed, entities.ErrEmailAlreadyExists)
		}
		log.Error(ctx, msgErrCreateAccount, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxCreatingAccount, services.ErrPersistenceFailed, err)
	}

	return &created, nil
}

// FindByEmail находит учетную запись по email.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("repository", repoAccount), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, name, email, password, created_at
        FROM accounts
        WHERE email = $1
    `

	var account entities.Account
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgAccountNotFound, zap.String("email", email))
			return nil, entities.ErrAccountNotFound
		}
		log.Error(ctx, msgErrFindByEmail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryingByEmail, err)
	}

	return &account, nil
}
