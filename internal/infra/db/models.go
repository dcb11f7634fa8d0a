package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Template struct {
	ID           uint64          `db:"id"`
	Name         string          `db:"name"`
	ThumbnailURL *string         `db:"thumbnail_url"`
	HTMLLayout   string          `db:"html_layout"`
	ConfigJSON   json.RawMessage `db:"config_json"`
	IsPremium    bool            `db:"is_premium"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type Builder struct {
	ID             uint64          `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	TemplateID     uint64          `db:"template_id"`
	Name           *string         `db:"name"`
	CustomDataJSON json.RawMessage `db:"custom_data_json"`
	RenderedHTML   *string         `db:"rendered_html"`
	RenderSource   *string         `db:"render_source"`
	LayoutHTML     *string         `db:"layout_html"`
	LayoutCSS      *string         `db:"layout_css"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type Editor struct {
	ID          uint64          `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Name        string          `db:"name"`
	Content     json.RawMessage `db:"content"`
	HTML        *string         `db:"html"`
	CSS         *string         `db:"css"`
	IsTemplate  bool            `db:"is_template"`
	Thumbnail   *string         `db:"thumbnail"`
	PublishedAt *time.Time      `db:"published_at"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Publish struct {
	ID           uint64     `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	BuilderID    uint64     `db:"builder_id"`
	Subdomain    string     `db:"subdomain"`
	CustomDomain *string    `db:"custom_domain"`
	PublishedAt  *time.Time `db:"published_at"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type RSVP struct {
	ID          uint64    `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	GuestName   string    `db:"guest_name"`
	PhoneNumber *string   `db:"phone_number"`
	Attending   string    `db:"attending"`
	Message     *string   `db:"message"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Outbox struct {
	ID        uint64          `db:"id"`
	Event     string          `db:"event"`
	Status    int             `db:"status"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `db:"created_at"`
}
