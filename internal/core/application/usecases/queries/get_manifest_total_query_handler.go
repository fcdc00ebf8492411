package queries

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetManifestTotalQueryHandler recomputes a manifest's totals from its member
// parcels.
type GetManifestTotalQueryHandler struct {
	db *gorm.DB
}

// NewGetManifestTotalQueryHandler creates a handler for manifest totals.
func NewGetManifestTotalQueryHandler(db *gorm.DB) GetManifestTotalQueryHandler {
	return GetManifestTotalQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when the
// manifest does not exist.
func (h GetManifestTotalQueryHandler) Handle(
	ctx context.Context,
	query GetManifestTotalQuery,
) (GetManifestTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManifestTotalQueryResponse{}, err
	}

	var exists int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM manifests WHERE id = ?", query.ManifestID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return GetManifestTotalQueryResponse{}, err
	}
	if exists == 0 {
		return GetManifestTotalQueryResponse{},
			errs.NewObjectNotFoundError("manifest", query.ManifestID().String())
	}

	var row struct {
		ParcelCount int64
		TotalPrice  decimal.Decimal
	}
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS parcel_count,
			COALESCE(SUM(p.price), 0) AS total_price
		FROM manifest_items mi
		JOIN parcels p ON p.barcode = mi.barcode
		WHERE mi.manifest_id = ?
	`, query.ManifestID().Bytes()).Scan(&row).Error
	if err != nil {
		return GetManifestTotalQueryResponse{}, err
	}

	total, err := kernel.NewMoney(row.TotalPrice)
	if err != nil {
		return GetManifestTotalQueryResponse{}, err
	}

	return GetManifestTotalQueryResponse{
		ManifestID:  query.ManifestID(),
		ParcelCount: row.ParcelCount,
		TotalPrice:  total,
	}, nil
}
