package queries

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler reads a parcel's audit trail from the
// database.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for audit trail queries.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back oldest first; the surrogate ID
// breaks ties between records written in the same instant.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetParcelHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor,
			comment,
			at
		FROM transition_records
		WHERE barcode = ?
		ORDER BY at, id
	`, query.Barcode().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var fromStatus, toStatus, actor, comment string
		var at time.Time

		if err = rows.Scan(&fromStatus, &toStatus, &actor, &comment, &at); err != nil {
			return nil, err
		}

		from, fromErr := parcel.StatusFromString(fromStatus)
		if fromErr != nil {
			return nil, fromErr
		}

		to, toErr := parcel.StatusFromString(toStatus)
		if toErr != nil {
			return nil, toErr
		}

		history = append(history, GetParcelHistoryQueryResponse{
			FromStatus: from,
			ToStatus:   to,
			Actor:      actor,
			Comment:    comment,
			At:         at,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
