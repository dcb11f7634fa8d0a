package config

import (
	"time"

	"github.com/dhank77/undangan.love/pkg/env"
)

type ServerConfig struct {
	Port            string
	AllowOrigins    string
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	BodyLimit       int
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            env.GetEnv("PORT", "8080"),
		AllowOrigins:    env.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		IdleTimeout:     time.Duration(env.GetInt("IDLE_TIMEOUT_SEC", 5)) * time.Second,
		ShutdownTimeout: time.Duration(env.GetInt("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		BodyLimit:       env.GetInt("BODY_LIMIT_BYTES", 8*1024*1024),
	}
}

// PaginationConfig bounds list sizes. Pages beyond the first are not served.
type PaginationConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

func NewPaginationConfig() PaginationConfig {
	return PaginationConfig{
		DefaultPerPage: env.GetInt("PER_PAGE_DEFAULT", 12),
		MaxPerPage:     env.GetInt("PER_PAGE_MAX", 100),
	}
}

// Limit resolves a requested page size: nil or non positive falls back to
// the default, anything above the maximum is capped.
func (p PaginationConfig) Limit(perPage *int) int {
	if perPage == nil || *perPage <= 0 {
		return p.DefaultPerPage
	}
	if *perPage > p.MaxPerPage {
		return p.MaxPerPage
	}
	return *perPage
}

type OutboxConfig struct {
	Interval  time.Duration
	BatchSize int
	Topic     string
}

func NewOutboxConfig() *OutboxConfig {
	return &OutboxConfig{
		Interval:  time.Duration(env.GetInt("OUTBOX_INTERVAL_MS", 2000)) * time.Millisecond,
		BatchSize: env.GetInt("OUTBOX_BATCH_SIZE", 10),
		Topic:     env.GetEnv("OUTBOX_TOPIC", "undangan.events"),
	}
}

type RSVPConfig struct {
	DefaultRegion string
}

func NewRSVPConfig() *RSVPConfig {
	return &RSVPConfig{
		DefaultRegion: env.GetEnv("PHONE_DEFAULT_REGION", "ID"),
	}
}
