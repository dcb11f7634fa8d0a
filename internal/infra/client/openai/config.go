package ai

import (
	"github.com/dhank77/undangan.love/pkg/env"
)

type OpenAIConfig struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int64
}

func NewOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		apiKey:    env.GetEnv("OPENAI_KEY", ""),
		baseURL:   env.GetEnv("OPENAI_BASE_URL", ""),
		model:     env.GetEnv("OPENAI_MODEL", "gpt-4o-mini"),
		maxTokens: int64(env.GetInt("OPENAI_TOKENS", 600)),
	}
}

func (c OpenAIConfig) Enabled() bool {
	return c.apiKey != ""
}
