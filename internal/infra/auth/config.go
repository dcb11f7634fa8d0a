package auth

import (
	"github.com/dhank77/undangan.love/pkg/env"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const ModeDev = "dev"

type Config struct {
	Mode     string
	TestUser *uuid.UUID
}

func NewConfig() *Config {
	cfg := &Config{Mode: env.GetEnv("MODE", "")}
	testUser := env.GetEnv("TEST_USER", "")
	if testUser != "" {
		testUserID, err := uuid.Parse(testUser)
		if err != nil {
			logrus.WithError(err).Error("error getting test user ID")
			return cfg
		}
		cfg.TestUser = &testUserID
	}
	return cfg
}
