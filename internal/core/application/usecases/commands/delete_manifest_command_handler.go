package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
)

// ErrPartialRevertFailure is the sentinel wrapped by every
// PartialRevertFailureError.
var ErrPartialRevertFailure = errors.New("manifest deletion could not revert every member")

// PartialRevertFailureError reports the member that blocked a manifest
// dissolution. The transaction has been rolled back: no member was reverted
// and the manifest still exists.
type PartialRevertFailureError struct {
	ManifestID kernel.UUID
	Barcode    kernel.Barcode
	Cause      error
}

// NewPartialRevertFailureError creates a PartialRevertFailureError for the
// member that failed.
func NewPartialRevertFailureError(manifestID kernel.UUID, barcode kernel.Barcode, cause error) *PartialRevertFailureError {
	return &PartialRevertFailureError{ManifestID: manifestID, Barcode: barcode, Cause: cause}
}

func (e *PartialRevertFailureError) Error() string {
	return fmt.Sprintf("%s: manifest %s, parcel %s (cause: %s)",
		ErrPartialRevertFailure, e.ManifestID, e.Barcode, e.Cause)
}

func (e *PartialRevertFailureError) Unwrap() []error {
	return []error{ErrPartialRevertFailure, e.Cause}
}

// manifestDeletionComment is recorded on each member's audit entry when its
// batch is dissolved.
const manifestDeletionComment = "manifest deleted"

// DeleteManifestCommandHandler dissolves a dispatch batch atomically: either
// every member is detached and back in EN_ATTENTE and the manifest row is
// gone, or nothing changed. A member that cannot be reverted, typically one
// already scanned out for delivery, aborts the whole dissolution with
// PartialRevertFailure.
type DeleteManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
	locker     ports.BarcodeLocker
	engine     services.TransitionEngine
}

// NewDeleteManifestCommandHandler creates a handler for manifest dissolution.
func NewDeleteManifestCommandHandler(
	uowFactory ManifestUoWFactory,
	locker ports.BarcodeLocker,
) DeleteManifestCommandHandler {
	return DeleteManifestCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the dissolution. The member list is read first to learn
// which locks to take; the member parcels themselves are only loaded and
// reverted after every lock is held. Members already in EN_ATTENTE are
// detached without a revert transition.
func (h DeleteManifestCommandHandler) Handle(ctx context.Context, cmd DeleteManifestCommand) error {
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

	manifestRepo := uow.ManifestRepository()
	m, err := manifestRepo.Get(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}

	keys := make([]string, 0, m.Size())
	for _, barcode := range m.Barcodes() {
		keys = append(keys, barcode.String())
	}

	release, err := h.locker.AcquireAll(ctx, keys)
	if err != nil {
		return err
	}
	defer release()

	parcelRepo := uow.ParcelRepository()
	members, err := parcelRepo.GetAllByBarcodes(ctx, m.Barcodes())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, p := range members {
		if err = h.revertMember(ctx, uow, p, cmd.Actor(), now); err != nil {
			return NewPartialRevertFailureError(m.ID(), p.Barcode(), err)
		}
	}

	if err = manifestRepo.Delete(ctx, m.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h DeleteManifestCommandHandler) revertMember(
	ctx context.Context,
	uow ManifestUoW,
	p *parcel.Parcel,
	actor string,
	now time.Time,
) error {
	p.DetachFromManifest()

	if p.Status() != parcel.StatusPending {
		result, err := h.engine.Apply(p, parcel.StatusPending, actor, manifestDeletionComment, now)
		if err != nil {
			return err
		}

		if err = uow.TransitionRecordRepository().Add(ctx, result.Record); err != nil {
			return err
		}
	}

	return uow.ParcelRepository().Update(ctx, p)
}
