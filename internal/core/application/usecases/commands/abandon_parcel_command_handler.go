package commands

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
)

// AbandonParcelCommandHandler writes a parcel off through the same engine as
// any other status move, so the transition table decides which statuses may
// still be abandoned. A parcel that already went out for delivery cannot be:
// the engine rejects it with IllegalTransition.
type AbandonParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	locker     ports.BarcodeLocker
	engine     services.TransitionEngine
}

// NewAbandonParcelCommandHandler creates a handler for parcel write-offs.
func NewAbandonParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	locker ports.BarcodeLocker,
) AbandonParcelCommandHandler {
	return AbandonParcelCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the abandonment: lock, read, move to the terminal
// abandoned status, persist the parcel and its audit record atomically.
func (h AbandonParcelCommandHandler) Handle(ctx context.Context, cmd AbandonParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.GetByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return err
	}

	result, err := h.engine.Apply(p, parcel.StatusAbandoned, cmd.Actor(), cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.TransitionRecordRepository().Add(ctx, result.Record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
