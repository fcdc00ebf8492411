package transitionrepo

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormTransitionRecordRepository implements TransitionRecordRepository using
// GORM.
type GormTransitionRecordRepository struct {
	db *gorm.DB
}

// NewGormTransitionRecordRepository creates a new GORM audit trail repository.
func NewGormTransitionRecordRepository(db *gorm.DB) *GormTransitionRecordRepository {
	return &GormTransitionRecordRepository{db: db}
}

// Add appends one audit entry.
func (r *GormTransitionRecordRepository) Add(ctx context.Context, record parcel.TransitionRecord) error {
	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByBarcode retrieves the audit entries of one parcel ordered by
// timestamp, oldest first.
func (r *GormTransitionRecordRepository) GetByBarcode(
	ctx context.Context,
	barcode kernel.Barcode,
) ([]parcel.TransitionRecord, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionRecordDTO
	err := r.db.WithContext(ctx).
		Where("barcode = ?", barcode.String()).
		Order("at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]parcel.TransitionRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
