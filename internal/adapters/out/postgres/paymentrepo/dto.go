// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. One payment row exists per delivered parcel; the
// unique barcode column is the database-level guarantee behind that rule.
package paymentrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Barcode   string          `gorm:"size:64;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,3)"`
	Status    string          `gorm:"size:16;index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID().Bytes(),
		Barcode:   p.Barcode().String(),
		Amount:    p.Amount().Amount(),
		Status:    p.Status().String(),
		CreatedAt: p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, barcode, amount, status, dto.CreatedAt)
}
