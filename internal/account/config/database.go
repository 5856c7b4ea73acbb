package config

import (
	"fmt"
	"time"

	"gogetaccount/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host            string        `yaml:"host" env:"ACCOUNT_POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"ACCOUNT_POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"ACCOUNT_POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"ACCOUNT_POSTGRES_PASSWORD" env-default:"postgres"`
	Database        string        `yaml:"database" env:"ACCOUNT_POSTGRES_DB" env-default:"account"`
	MinConn         int           `yaml:"min_conn" env:"ACCOUNT_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn         int           `yaml:"max_conn" env:"ACCOUNT_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"ACCOUNT_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	MigrationsDir   string        `yaml:"migrations_dir" env:"ACCOUNT_MIGRATIONS_DIR" env-default:"migrations/account"`
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}

// PoolOptions возвращает размеры пула соединений.
func (p *PostgresConfig) PoolOptions() postgres.PoolOptions {
	return postgres.PoolOptions{
		MinConns:        p.MinConn,
		MaxConns:        p.MaxConn,
		MaxConnLifetime: p.MaxConnLifetime,
	}
}
