package queries

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetOutstandingPaymentsQueryIsNotConstructed = errors.New(
	"GetOutstandingPaymentsQuery must be created via NewGetOutstandingPaymentsQuery constructor",
)

// GetOutstandingPaymentsQuery retrieves a client's uncollected COD payments:
// every pending payment whose parcel belongs to the client.
//
// Example:
//
//	query, err := NewGetOutstandingPaymentsQuery(clientID)
//	if err != nil {
//	    return err
//	}
//
//	outstanding, err := handler.Handle(ctx, query)
//	for _, due := range outstanding {
//	    fmt.Printf("%s owes %s for %s\n", due.RecipientName, due.Amount, due.Barcode)
//	}
type GetOutstandingPaymentsQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOutstandingPaymentsQuery creates a query for the client's pending
// payments.
func NewGetOutstandingPaymentsQuery(clientID kernel.UUID) (GetOutstandingPaymentsQuery, error) {
	q := GetOutstandingPaymentsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setClientID(clientID); err != nil {
		return GetOutstandingPaymentsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOutstandingPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOutstandingPaymentsQueryIsNotConstructed)
}

// ClientID returns the client whose payments are requested.
func (q GetOutstandingPaymentsQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q *GetOutstandingPaymentsQuery) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	q.clientID = clientID
	return nil
}

// GetOutstandingPaymentsQueryResponse represents one uncollected payment.
type GetOutstandingPaymentsQueryResponse struct {
	PaymentID     kernel.UUID
	Barcode       kernel.Barcode
	Amount        kernel.Money
	RecipientName string
}
