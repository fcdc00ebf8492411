package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for manifest aggregates.
// Member order is preserved across round trips because the printed run sheet
// depends on it.
type ManifestRepository interface {
	// Add persists a new manifest aggregate with its ordered member list.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Update persists a changed member list for an existing manifest.
	Update(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)

	// Delete removes a manifest and its member associations.
	// Parcels themselves are untouched; reverting their status is the
	// caller's responsibility, inside the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error
}
