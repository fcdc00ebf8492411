package parcelrepo

import (
	"context"
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Barcode().String(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("barcode = ?", dto.Barcode).
		Select("*").
		Omit("barcode", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Barcode().String(), aggregate)
	return nil
}

// GetByBarcode retrieves a parcel by its barcode.
func (r *GormParcelRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*parcel.Parcel, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", barcode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByBarcodes retrieves the parcels for a set of barcodes.
// Every barcode must resolve; the first missing one fails the call with an
// ObjectNotFoundError.
func (r *GormParcelRepository) GetAllByBarcodes(
	ctx context.Context,
	barcodes []kernel.Barcode,
) ([]*parcel.Parcel, error) {
	keys := make([]string, 0, len(barcodes))
	for _, barcode := range barcodes {
		if err := barcode.Validate(); err != nil {
			return nil, err
		}
		keys = append(keys, barcode.String())
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "barcode IN ?", keys).Error; err != nil {
		return nil, err
	}

	found := make(map[string]ParcelDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.Barcode] = dto
	}

	parcels := make([]*parcel.Parcel, 0, len(barcodes))
	for _, key := range keys {
		dto, ok := found[key]
		if !ok {
			return nil, errs.NewObjectNotFoundError("parcel", key)
		}

		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// GetAllDeliveredWithoutPayment retrieves delivered parcels missing their
// payment row.
func (r *GormParcelRepository) GetAllDeliveredWithoutPayment(ctx context.Context) ([]*parcel.Parcel, error) {
	delivered := []string{
		parcel.StatusDelivered.String(),
		parcel.StatusDeliveredPaid.String(),
		parcel.StatusExchanged.String(),
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", delivered).
		Where("barcode NOT IN (SELECT barcode FROM payments)").
		Order("barcode").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
