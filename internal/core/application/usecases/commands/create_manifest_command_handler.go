package commands

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/manifest"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/ports"
)

// CreateManifestCommandHandler batches warehouse parcels into a dispatch
// manifest. Every member must belong to the requesting client, sit in a
// warehouse status, and not already be on another manifest; one bad parcel
// fails the whole batch and nothing is persisted.
//
// All member locks are taken up front, in deterministic order, so two
// overlapping batch requests cannot deadlock: one wins the shared parcels,
// the other fails on eligibility after the first commits.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
	locker     ports.BarcodeLocker
}

// NewCreateManifestCommandHandler creates a handler for manifest creation.
func NewCreateManifestCommandHandler(
	uowFactory ManifestUoWFactory,
	locker ports.BarcodeLocker,
) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the manifest creation command.
// Attachment does not change member statuses; the manifest row and the
// parcels' manifest references are written in one transaction.
func (h CreateManifestCommandHandler) Handle(ctx context.Context, cmd CreateManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	keys := make([]string, 0, len(cmd.Barcodes()))
	for _, barcode := range cmd.Barcodes() {
		keys = append(keys, barcode.String())
	}

	release, err := h.locker.AcquireAll(ctx, keys)
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
	members, err := parcelRepo.GetAllByBarcodes(ctx, cmd.Barcodes())
	if err != nil {
		return err
	}

	m, err := manifest.NewManifest(cmd.ManifestID(), cmd.ClientID(), cmd.Barcodes(), time.Now())
	if err != nil {
		return err
	}

	for _, p := range members {
		if !p.ClientID().IsEqual(cmd.ClientID()) {
			return parcel.NewIneligibleParcelError(p.Barcode(), "parcel belongs to another client")
		}

		if err = p.AttachToManifest(m.ID()); err != nil {
			return err
		}

		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = uow.ManifestRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
