// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain repositories and read projections straight
// from the database, so reporting never competes with the write path for
// aggregate locks.
package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery retrieves the full audit trail of one parcel, oldest
// entry first.
//
// Example:
//
//	query, err := NewGetParcelHistoryQuery(barcode)
//	if err != nil {
//	    return err
//	}
//
//	history, err := handler.Handle(ctx, query)
//	for _, entry := range history {
//	    fmt.Printf("%s -> %s by %s at %s\n",
//	        entry.FromStatus, entry.ToStatus, entry.Actor, entry.At)
//	}
type GetParcelHistoryQuery struct { //nolint:recvcheck //using for validation
	barcode kernel.Barcode

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a query for the parcel's audit trail.
func NewGetParcelHistoryQuery(barcode kernel.Barcode) (GetParcelHistoryQuery, error) {
	q := GetParcelHistoryQuery{guard: guard.NewConstructorGuard()}
	if err := q.setBarcode(barcode); err != nil {
		return GetParcelHistoryQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// Barcode returns the parcel whose history is requested.
func (q GetParcelHistoryQuery) Barcode() kernel.Barcode {
	return q.barcode
}

func (q *GetParcelHistoryQuery) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	q.barcode = barcode
	return nil
}

// GetParcelHistoryQueryResponse represents one audit trail entry.
type GetParcelHistoryQueryResponse struct {
	FromStatus parcel.Status
	ToStatus   parcel.Status
	Actor      string
	Comment    string
	At         time.Time
}
