package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/google/uuid"
)

// CreatePublish reserves a subdomain for a builder. The record starts as a
// draft; nothing is served from it yet.
type CreatePublish struct {
	store interfaces.Store
}

func NewCreatePublish(store interfaces.Store) *CreatePublish {
	return &CreatePublish{store: store}
}

func (c *CreatePublish) Execute(ctx context.Context, userID uuid.UUID, req *dto.CreatePublishRequest) (*entity.Publish, error) {
	req.Subdomain = strings.ToLower(strings.TrimSpace(req.Subdomain))
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	repos := c.store.Repos()

	if _, err := repos.Builders.GetBuilderByID(ctx, req.BuilderID); err != nil {
		var notFound errs.NotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewValidationError("builder_id", "selected builder does not exist")
		}
		return nil, fmt.Errorf("err getting builder %d, %w", req.BuilderID, err)
	}

	taken, err := repos.Publishes.SubdomainTaken(ctx, req.Subdomain)
	if err != nil {
		return nil, fmt.Errorf("err checking subdomain, %w", err)
	}
	if taken {
		return nil, errs.NewValidationError("subdomain", "has already been taken")
	}

	now := time.Now()
	publish := entity.Publish{
		UserID:       userID,
		BuilderID:    req.BuilderID,
		Subdomain:    req.Subdomain,
		CustomDomain: req.CustomDomain,
		Status:       consts.PublishStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = repos.Publishes.InsertPublish(ctx, &publish); err != nil {
		return nil, fmt.Errorf("err inserting publish, %w", err)
	}
	return &publish, nil
}
