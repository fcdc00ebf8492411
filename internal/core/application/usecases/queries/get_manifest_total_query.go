package queries

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetManifestTotalQueryIsNotConstructed = errors.New(
	"GetManifestTotalQuery must be created via NewGetManifestTotalQuery constructor",
)

// GetManifestTotalQuery retrieves a manifest's member count and total
// declared value. The total is recomputed from the member parcels on every
// call; no running total is stored that could drift from reality.
//
// Example:
//
//	query, err := NewGetManifestTotalQuery(manifestID)
//	if err != nil {
//	    return err
//	}
//
//	total, err := handler.Handle(ctx, query)
//	fmt.Printf("manifest %s: %d parcels, %s\n", manifestID, total.ParcelCount, total.TotalPrice)
type GetManifestTotalQuery struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetManifestTotalQuery creates a query for the manifest's totals.
func NewGetManifestTotalQuery(manifestID kernel.UUID) (GetManifestTotalQuery, error) {
	q := GetManifestTotalQuery{guard: guard.NewConstructorGuard()}
	if err := q.setManifestID(manifestID); err != nil {
		return GetManifestTotalQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManifestTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestTotalQueryIsNotConstructed)
}

// ManifestID returns the manifest whose totals are requested.
func (q GetManifestTotalQuery) ManifestID() kernel.UUID {
	return q.manifestID
}

func (q *GetManifestTotalQuery) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	q.manifestID = manifestID
	return nil
}

// GetManifestTotalQueryResponse represents a manifest's recomputed totals.
type GetManifestTotalQueryResponse struct {
	ManifestID  kernel.UUID
	ParcelCount int64
	TotalPrice  kernel.Money
}
