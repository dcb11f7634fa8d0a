package rsvp

import (
	"context"
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

type CreateRSVP struct {
	store interfaces.Store
	phone interfaces.PhoneNormalizer
}

func NewCreateRSVP(store interfaces.Store, phone interfaces.PhoneNormalizer) *CreateRSVP {
	return &CreateRSVP{store: store, phone: phone}
}

func (c *CreateRSVP) Execute(ctx context.Context, ownerID uuid.UUID, req *dto.CreateRSVPRequest) (*entity.RSVP, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	rsvp := entity.RSVP{
		UserID:    ownerID,
		GuestName: strings.TrimSpace(req.GuestName),
		Attending: consts.AttendingYes,
		Message:   req.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Attending != nil {
		rsvp.Attending = consts.Attending(*req.Attending)
	}
	if req.PhoneNumber != nil && strings.TrimSpace(*req.PhoneNumber) != "" {
		normalized, err := c.phone.Normalize(*req.PhoneNumber)
		if err != nil {
			return nil, errs.NewValidationError("phone_number", err.Error())
		}
		rsvp.PhoneNumber = &normalized
	}

	if err := c.store.Repos().RSVPs.InsertRSVP(ctx, &rsvp); err != nil {
		return nil, fmt.Errorf("err inserting rsvp, %w", err)
	}
	return &rsvp, nil
}

type DeleteRSVP struct {
	store interfaces.Store
}

func NewDeleteRSVP(store interfaces.Store) *DeleteRSVP {
	return &DeleteRSVP{store: store}
}

func (c *DeleteRSVP) Execute(ctx context.Context, rsvpID uint64) error {
	if err := c.store.Repos().RSVPs.DeleteRSVP(ctx, rsvpID); err != nil {
		return fmt.Errorf("err deleting rsvp %d, %w", rsvpID, err)
	}
	return nil
}
