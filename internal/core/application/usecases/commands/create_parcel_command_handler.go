package commands

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/ports"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// New parcels enter the workflow in EN_ATTENTE, awaiting pickup scheduling.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, locker)
//	cmd, _ := NewCreateParcelCommand(barcode, clientID, price, 1, recipient, nil, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel creation failed: %w", err)
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	locker     ports.BarcodeLocker
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a ParcelUoWFactory for transactional persistence and a
// BarcodeLocker to fence concurrent registrations of the same barcode.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory, locker ports.BarcodeLocker) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the parcel creation command.
// The barcode lock prevents two concurrent requests from racing on the same
// label; the transaction ensures the parcel is persisted or rolled back.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locker.Acquire(ctx, cmd.Barcode().String())
	if err != nil {
		return err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := parcel.NewParcel(
		cmd.Barcode(),
		cmd.ClientID(),
		cmd.Price(),
		cmd.ArticleCount(),
		cmd.Recipient(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if exchange := cmd.Exchange(); exchange != nil {
		if err = p.SetExchange(*exchange); err != nil {
			return err
		}
	}
	p.SetNote(cmd.Note())

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
