package ai

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
)

type EnrichContent struct {
	enricher interfaces.ContentEnricher
}

func NewEnrichContent(enricher interfaces.ContentEnricher) *EnrichContent {
	return &EnrichContent{
		enricher,
	}
}

func (c EnrichContent) Execute(ctx context.Context, req *dto.EnrichContentRequest) (*dto.EnrichContentResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	enriched, err := c.enricher.Enrich(ctx, req.Content)
	if err != nil {
		return nil, fmt.Errorf("err enriching content, %w", err)
	}

	return &dto.EnrichContentResponse{Enriched: enriched}, nil
}
