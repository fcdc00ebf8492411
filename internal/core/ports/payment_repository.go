package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// Payments are never deleted; they resolve in place.
type PaymentRepository interface {
	// Add persists a new payment aggregate.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists a resolution change to an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByBarcode retrieves the payment of a parcel, if one exists.
	// Returns an ObjectNotFoundError when the parcel has no payment yet.
	GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*payment.Payment, error)
}
