package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
)

const systemPrompt = "You polish wedding invitation messages. Keep the language of the input " +
	"(usually Indonesian), keep names, dates and places exactly as given, stay warm and formal, " +
	"and answer with the rewritten message only."

type OpenAIClient struct {
	cfg    OpenAIConfig
	client openai.Client
}

var _ interfaces.ContentEnricher = (*OpenAIClient)(nil)

func NewOpenAIClient(config OpenAIConfig) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(config.apiKey), option.WithMaxRetries(0)}
	if config.baseURL != "" {
		opts = append(opts, option.WithBaseURL(config.baseURL))
	}
	return &OpenAIClient{
		config,
		openai.NewClient(opts...),
	}
}

func (c *OpenAIClient) Enrich(ctx context.Context, content string) (string, error) {
	if !c.cfg.Enabled() {
		return "", errs.UnavailableError{Feature: "content enrichment"}
	}

	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.cfg.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(content),
		},
		MaxCompletionTokens: param.Opt[int64]{Value: c.cfg.maxTokens},
		N:                   param.Opt[int64]{Value: 1},
		Temperature:         param.Opt[float64]{Value: 0.8},
	})
	if err != nil {
		return "", fmt.Errorf("err requesting completion, %w", err)
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return strings.TrimSpace(chatCompletion.Choices[0].Message.Content), nil
}
