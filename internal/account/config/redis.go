package config

import (
	"time"

	"gogetaccount/pkg/db/redis"
)

// RedisConfig представляет конфигурацию Redis, где хранятся токены доступа.
type RedisConfig struct {
	Host         string        `yaml:"host" env:"ACCOUNT_REDIS_HOST" env-default:"localhost"`
	Port         int           `yaml:"port" env:"ACCOUNT_REDIS_PORT" env-default:"6379"`
	Password     string        `yaml:"password" env:"ACCOUNT_REDIS_PASSWORD" env-default:""`
	DB           int           `yaml:"db" env:"ACCOUNT_REDIS_DB" env-default:"0"`
	PoolSize     int           `yaml:"pool_size" env:"ACCOUNT_REDIS_POOL_SIZE" env-default:"10"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"ACCOUNT_REDIS_DIAL_TIMEOUT" env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"ACCOUNT_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"ACCOUNT_REDIS_WRITE_TIMEOUT" env-default:"3s"`
}

// ToRedis преобразует настройки в конфигурацию клиента.
func (c *RedisConfig) ToRedis() *redis.Config {
	return &redis.Config{
		Host:         c.Host,
		Port:         c.Port,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     c.PoolSize,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
}
