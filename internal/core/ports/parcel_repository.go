package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Parcels are keyed by barcode and never deleted; soft deletion happens
// through the ABANDONNEE status.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// GetByBarcode retrieves a parcel aggregate by its barcode.
	GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*parcel.Parcel, error)

	// GetAllByBarcodes retrieves the parcels for a set of barcodes.
	// Every barcode must resolve; a missing one fails the whole call.
	GetAllByBarcodes(ctx context.Context, barcodes []kernel.Barcode) ([]*parcel.Parcel, error)

	// GetAllDeliveredWithoutPayment retrieves delivered parcels that have no
	// payment row yet. Used by the reconciliation sweep.
	GetAllDeliveredWithoutPayment(ctx context.Context) ([]*parcel.Parcel, error)
}

// TransitionRecordRepository defines the persistence contract for the
// append-only status audit trail. Records are never updated or deleted.
type TransitionRecordRepository interface {
	// Add appends one audit record.
	Add(ctx context.Context, record parcel.TransitionRecord) error

	// GetByBarcode retrieves the records of one parcel ordered by timestamp.
	GetByBarcode(ctx context.Context, barcode kernel.Barcode) ([]parcel.TransitionRecord, error)
}
