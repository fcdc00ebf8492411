package queries

import (
	"context"
	"sort"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkflowStatsQueryHandler aggregates parcel counts and declared value
// per status. A status value in the table that the domain does not recognize
// fails the whole query instead of being silently dropped: a corrupt status
// column is an operational incident, not a reporting detail.
type GetWorkflowStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkflowStatsQueryHandler creates a handler for workflow statistics.
func NewGetWorkflowStatsQueryHandler(db *gorm.DB) GetWorkflowStatsQueryHandler {
	return GetWorkflowStatsQueryHandler{db: db}
}

// Handle executes the aggregation. Rows come back in the workflow's natural
// status order, only for statuses that have at least one parcel.
func (h GetWorkflowStatsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkflowStatsQuery,
) ([]GetWorkflowStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	excluded := make([]string, 0, len(query.Excluded()))
	for _, status := range query.Excluded() {
		excluded = append(excluded, status.String())
	}

	tx := h.db.WithContext(ctx)
	sql := `
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(price), 0)
		FROM parcels
	`
	var rows *gorm.DB
	if len(excluded) > 0 {
		rows = tx.Raw(sql+" WHERE status NOT IN ? GROUP BY status", excluded)
	} else {
		rows = tx.Raw(sql + " GROUP BY status")
	}

	result, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer result.Close()

	stats := make([]GetWorkflowStatsQueryResponse, 0)

	for result.Next() {
		var statusName string
		var count int64
		var total decimal.Decimal

		if err = result.Scan(&statusName, &count, &total); err != nil {
			return nil, err
		}

		status, sErr := parcel.StatusFromString(statusName)
		if sErr != nil {
			return nil, sErr
		}

		totalPrice, mErr := kernel.NewMoney(total)
		if mErr != nil {
			return nil, mErr
		}

		stats = append(stats, GetWorkflowStatsQueryResponse{
			Status:     status,
			Count:      count,
			TotalPrice: totalPrice,
		})
	}

	if err = result.Err(); err != nil {
		return nil, err
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Status < stats[j].Status
	})

	return stats, nil
}
