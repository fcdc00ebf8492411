package queries

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetWorkflowStatsQueryIsNotConstructed = errors.New(
	"GetWorkflowStatsQuery must be created via NewGetWorkflowStatsQuery constructor",
)

// GetWorkflowStatsQuery retrieves the workload dashboard: parcel count and
// total declared value per status. Statuses in the exclusion list are left
// out of the breakdown, which operators use to hide settled terminal states.
//
// Example:
//
//	query, err := NewGetWorkflowStatsQuery(parcel.TerminalStatuses())
//	if err != nil {
//	    return err
//	}
//
//	stats, err := handler.Handle(ctx, query)
//	for _, row := range stats {
//	    fmt.Printf("%-22s %5d parcels, %s total\n", row.Status, row.Count, row.TotalPrice)
//	}
type GetWorkflowStatsQuery struct { //nolint:recvcheck //using for validation
	excluded []parcel.Status

	guard guard.ConstructorGuard
}

// NewGetWorkflowStatsQuery creates a stats query. The exclusion list may be
// empty; every listed status must be a known one.
func NewGetWorkflowStatsQuery(excluded []parcel.Status) (GetWorkflowStatsQuery, error) {
	q := GetWorkflowStatsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setExcluded(excluded); err != nil {
		return GetWorkflowStatsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkflowStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowStatsQueryIsNotConstructed)
}

// Excluded returns the statuses left out of the breakdown.
func (q GetWorkflowStatsQuery) Excluded() []parcel.Status {
	return q.excluded
}

func (q *GetWorkflowStatsQuery) setExcluded(excluded []parcel.Status) error {
	for _, status := range excluded {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	q.excluded = excluded
	return nil
}

// GetWorkflowStatsQueryResponse represents one row of the status breakdown.
type GetWorkflowStatsQueryResponse struct {
	Status     parcel.Status
	Count      int64
	TotalPrice kernel.Money
}
