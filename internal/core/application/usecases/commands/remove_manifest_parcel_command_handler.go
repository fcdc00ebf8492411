package commands

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
)

// manifestRemovalComment is recorded on the audit entry when a parcel is
// reverted to EN_ATTENTE after leaving a batch.
const manifestRemovalComment = "removed from manifest"

// RemoveManifestParcelCommandHandler pulls one member out of a dispatch
// batch. The parcel is detached and, unless it already sits in EN_ATTENTE,
// reverted there through the transition engine with an audit record.
// Removing the last member deletes the now-empty manifest.
type RemoveManifestParcelCommandHandler struct {
	uowFactory ManifestUoWFactory
	locker     ports.BarcodeLocker
	engine     services.TransitionEngine
}

// NewRemoveManifestParcelCommandHandler creates a handler for member removal.
func NewRemoveManifestParcelCommandHandler(
	uowFactory ManifestUoWFactory,
	locker ports.BarcodeLocker,
) RemoveManifestParcelCommandHandler {
	return RemoveManifestParcelCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the removal: lock the member, drop it from the batch,
// detach and revert the parcel, persist everything in one transaction.
// Fails with NotAMember when the barcode is not in the manifest.
func (h RemoveManifestParcelCommandHandler) Handle(ctx context.Context, cmd RemoveManifestParcelCommand) error {
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

	manifestRepo := uow.ManifestRepository()
	m, err := manifestRepo.Get(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}

	if err = m.Remove(cmd.Barcode()); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.GetByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return err
	}

	p.DetachFromManifest()

	// A member that is already EN_ATTENTE only detaches; the engine would
	// reject the self-transition.
	if p.Status() != parcel.StatusPending {
		result, applyErr := h.engine.Apply(p, parcel.StatusPending, cmd.Actor(), manifestRemovalComment, time.Now())
		if applyErr != nil {
			return applyErr
		}

		if err = uow.TransitionRecordRepository().Add(ctx, result.Record); err != nil {
			return err
		}
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if m.Size() == 0 {
		err = manifestRepo.Delete(ctx, m.ID())
	} else {
		err = manifestRepo.Update(ctx, m)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
