package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/domain/services/access"
	"logistics/internal/core/ports"
)

// registerParcelMaxAttempts bounds tracking number regeneration when the
// unique constraint fires at save time.
const registerParcelMaxAttempts = 3

// RegisterParcelCommandHandler attaches parcels to shipments that still
// accept them.
//
// The tracking number generator does not pre-verify uniqueness; a
// duplicate surfaces from the repository at save time and the handler
// regenerates and retries a bounded number of times.
type RegisterParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     access.ParcelPolicy
	generator  services.TrackingNumberGenerator
}

// NewRegisterParcelCommandHandler creates a handler for parcel
// registration.
func NewRegisterParcelCommandHandler(uowFactory ParcelUoWFactory) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewParcelPolicy(),
		generator:  services.NewTrackingNumberGenerator(),
	}
}

// Handle processes the registration command.
func (h *RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateCreate(cmd.Principal(), owner.AgencyID()); err != nil {
		return err
	}
	if err = auth.CheckTenant(ctx, owner.AgencyID(), "register parcel"); err != nil {
		return err
	}
	if err = owner.ValidateParcelAttachment(); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	now := time.Now()

	var registered *parcel.Parcel
	for attempt := 0; attempt < registerParcelMaxAttempts; attempt++ {
		trackingNumber, err := h.generator.Generate(now)
		if err != nil {
			return err
		}

		registered, err = parcel.NewParcel(cmd.ParcelID(), owner.AgencyID(), owner.ID(), trackingNumber, cmd.Description())
		if err != nil {
			return err
		}

		err = parcelRepo.Add(ctx, registered)
		if err == nil {
			break
		}
		if !errors.Is(err, ports.ErrDuplicateTrackingNumber) || attempt == registerParcelMaxAttempts-1 {
			return err
		}
	}

	event := events.NewParcelRegistered(owner.AgencyID(), registered.ID(), owner.ID(), registered.TrackingNumber(), now)
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
