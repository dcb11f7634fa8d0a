package entity

import (
	"time"

	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/google/uuid"
)

// RSVP is a guest response. UserID is the invitation owner, not the guest.
type RSVP struct {
	ID          uint64           `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	GuestName   string           `json:"guest_name"`
	PhoneNumber *string          `json:"phone_number"`
	Attending   consts.Attending `json:"attending"`
	Message     *string          `json:"message"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
