package entity

import (
	"time"

	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/google/uuid"
)

type Publish struct {
	ID           uint64               `json:"id"`
	UserID       uuid.UUID            `json:"user_id"`
	BuilderID    uint64               `json:"builder_id"`
	Subdomain    string               `json:"subdomain"`
	CustomDomain *string              `json:"custom_domain"`
	PublishedAt  *time.Time           `json:"published_at"`
	Status       consts.PublishStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
