package queries

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOutstandingPaymentsQueryHandler reads a client's pending payments from
// the database.
type GetOutstandingPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOutstandingPaymentsQueryHandler creates a handler for outstanding
// payment queries.
func NewGetOutstandingPaymentsQueryHandler(db *gorm.DB) GetOutstandingPaymentsQueryHandler {
	return GetOutstandingPaymentsQueryHandler{db: db}
}

// Handle executes the query. Results come back newest parcel first, matching
// the order the back office settles cash in.
func (h GetOutstandingPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetOutstandingPaymentsQuery,
) ([]GetOutstandingPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	outstanding := make([]GetOutstandingPaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			pay.id,
			pay.barcode,
			pay.amount,
			p.recipient_name
		FROM payments pay
		JOIN parcels p ON p.barcode = pay.barcode
		WHERE p.client_id = ? AND pay.status = ?
		ORDER BY p.created_at DESC
	`, query.ClientID().Bytes(), payment.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var barcode, recipientName string
		var amount decimal.Decimal

		if err = rows.Scan(&id, &barcode, &amount, &recipientName); err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parcelBarcode, bErr := kernel.NewBarcode(barcode)
		if bErr != nil {
			return nil, bErr
		}

		due, mErr := kernel.NewMoney(amount)
		if mErr != nil {
			return nil, mErr
		}

		outstanding = append(outstanding, GetOutstandingPaymentsQueryResponse{
			PaymentID:     paymentID,
			Barcode:       parcelBarcode,
			Amount:        due,
			RecipientName: recipientName,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return outstanding, nil
}
