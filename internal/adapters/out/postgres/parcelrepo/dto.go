// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The status is stored under its wire name so the table stays
// readable and raw reporting queries can filter on the same names the API
// exposes.
type ParcelDTO struct {
	Barcode              string          `gorm:"primaryKey;size:64"`
	ClientID             uuid.UUID       `gorm:"type:uuid;index"`
	Status               string          `gorm:"size:32;index"`
	Price                decimal.Decimal `gorm:"type:numeric(12,3)"`
	ArticleCount         int
	Recipient            RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	ExchangeBarcode      *string      `gorm:"size:64"`
	ExchangeArticleCount *int
	Note                 string
	ManifestID           *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// RecipientDTO represents the embedded recipient columns within the parcel
// table.
type RecipientDTO struct {
	Name        string
	Phone       string
	Address     string
	Governorate string
	City        string
}

// fromDomain converts a parcel domain aggregate to its database
// representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var exchangeBarcode *string
	var exchangeCount *int
	if ex := p.Exchange(); ex != nil {
		barcode := ex.Barcode.String()
		count := ex.ArticleCount
		exchangeBarcode = &barcode
		exchangeCount = &count
	}

	var manifestID *uuid.UUID
	if id := p.ManifestID(); id != nil {
		raw := id.Bytes()
		manifestID = &raw
	}

	recipient := p.Recipient()

	return ParcelDTO{
		Barcode:      p.Barcode().String(),
		ClientID:     p.ClientID().Bytes(),
		Status:       p.Status().String(),
		Price:        p.Price().Amount(),
		ArticleCount: p.ArticleCount(),
		Recipient: RecipientDTO{
			Name:        recipient.Name,
			Phone:       recipient.Phone,
			Address:     recipient.Address,
			Governorate: recipient.Governorate,
			City:        recipient.City,
		},
		ExchangeBarcode:      exchangeBarcode,
		ExchangeArticleCount: exchangeCount,
		Note:                 p.Note(),
		ManifestID:           manifestID,
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var exchange *parcel.Exchange
	if dto.ExchangeBarcode != nil {
		exchangeBarcode, exErr := kernel.NewBarcode(*dto.ExchangeBarcode)
		if exErr != nil {
			return nil, exErr
		}

		count := 0
		if dto.ExchangeArticleCount != nil {
			count = *dto.ExchangeArticleCount
		}
		exchange = &parcel.Exchange{Barcode: exchangeBarcode, ArticleCount: count}
	}

	var manifestID *kernel.UUID
	if dto.ManifestID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.ManifestID)[:])
		if mErr != nil {
			return nil, mErr
		}
		manifestID = &mID
	}

	return parcel.RestoreParcel(
		barcode,
		clientID,
		status,
		price,
		dto.ArticleCount,
		parcel.Recipient{
			Name:        dto.Recipient.Name,
			Phone:       dto.Recipient.Phone,
			Address:     dto.Recipient.Address,
			Governorate: dto.Recipient.Governorate,
			City:        dto.Recipient.City,
		},
		exchange,
		dto.Note,
		manifestID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
