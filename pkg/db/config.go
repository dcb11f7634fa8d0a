package db

import (
	"fmt"

	"github.com/dhank77/undangan.love/pkg/env"
)

type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

func NewConfig() Config {
	return Config{
		Host:     env.GetEnv("PG_HOST", "localhost"),
		Port:     env.GetInt("PG_PORT", 5432),
		Database: env.GetEnv("PG_DB", "postgres"),
		User:     env.GetEnv("PG_USER", "postgres"),
		Password: env.GetEnv("PG_PASSWORD", "postgres"),
		SSLMode:  env.GetEnv("PG_SSLMODE", "disable"),
	}
}

func (conf *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		conf.User, conf.Password, conf.Host, conf.Port, conf.Database, conf.SSLMode,
	)
}
