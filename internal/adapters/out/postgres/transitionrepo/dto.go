// Package transitionrepo persists the append-only status audit trail.
// Records are written alongside parcel updates in the same transaction and
// never modified afterwards.
package transitionrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
)

// TransitionRecordDTO represents the database structure for one audit entry.
// The surrogate ID only exists for storage; the domain identity of a record
// is its barcode plus timestamp.
type TransitionRecordDTO struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Barcode    string `gorm:"size:64;index:idx_transition_records_barcode_at"`
	FromStatus string `gorm:"size:32"`
	ToStatus   string `gorm:"size:32"`
	Actor      string
	Comment    string
	At         time.Time `gorm:"index:idx_transition_records_barcode_at"`
}

// TableName specifies the database table name for audit entries.
func (TransitionRecordDTO) TableName() string {
	return "transition_records"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(record parcel.TransitionRecord) TransitionRecordDTO {
	return TransitionRecordDTO{
		Barcode:    record.Barcode().String(),
		FromStatus: record.FromStatus().String(),
		ToStatus:   record.ToStatus().String(),
		Actor:      record.Actor(),
		Comment:    record.Comment(),
		At:         record.At(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto TransitionRecordDTO) (parcel.TransitionRecord, error) {
	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return parcel.TransitionRecord{}, err
	}

	fromStatus, err := parcel.StatusFromString(dto.FromStatus)
	if err != nil {
		return parcel.TransitionRecord{}, err
	}

	toStatus, err := parcel.StatusFromString(dto.ToStatus)
	if err != nil {
		return parcel.TransitionRecord{}, err
	}

	return parcel.NewTransitionRecord(barcode, fromStatus, toStatus, dto.Actor, dto.Comment, dto.At), nil
}
