// Package manifestrepo provides data transfer objects and mapping functions
// for manifest persistence. A manifest is stored as a header row plus ordered
// item rows; the position column preserves the run sheet order across round
// trips.
package manifestrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

// ManifestDTO represents the manifest header row.
type ManifestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	Items     []ManifestItemDTO `gorm:"foreignKey:ManifestID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for manifest headers.
func (ManifestDTO) TableName() string {
	return "manifests"
}

// ManifestItemDTO represents one member row. Position is zero-based insertion
// order.
type ManifestItemDTO struct {
	ManifestID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Barcode    string    `gorm:"size:64;primaryKey"`
	Position   int
}

// TableName specifies the database table name for manifest members.
func (ManifestItemDTO) TableName() string {
	return "manifest_items"
}

// fromDomain converts a manifest aggregate to its database representation.
func fromDomain(m *manifest.Manifest) ManifestDTO {
	barcodes := m.Barcodes()
	items := make([]ManifestItemDTO, 0, len(barcodes))
	for i, barcode := range barcodes {
		items = append(items, ManifestItemDTO{
			ManifestID: m.ID().Bytes(),
			Barcode:    barcode.String(),
			Position:   i,
		})
	}

	return ManifestDTO{
		ID:        m.ID().Bytes(),
		ClientID:  m.ClientID().Bytes(),
		CreatedAt: m.CreatedAt(),
		Items:     items,
	}
}

// toDomain converts a database DTO to a manifest aggregate. Items must
// already be sorted by position.
func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	barcodes := make([]kernel.Barcode, 0, len(dto.Items))
	for _, item := range dto.Items {
		barcode, bErr := kernel.NewBarcode(item.Barcode)
		if bErr != nil {
			return nil, bErr
		}
		barcodes = append(barcodes, barcode)
	}

	return manifest.RestoreManifest(id, clientID, barcodes, dto.CreatedAt)
}
