// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-barcode locking,
// transaction management, and persistence.
package commands

import (
	"context"

	"parcelflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to parcel persistence within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RecordRepoFactory provides access to the audit trail within a transaction.
	RecordRepoFactory interface {
		TransitionRecordRepository() ports.TransitionRecordRepository
	}

	// ManifestRepoFactory provides access to manifest persistence within a transaction.
	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	// PaymentRepoFactory provides access to payment persistence within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ParcelUoW manages transactions for operations that move a parcel and may
	// touch its payment: transitions, abandonment, payment confirmation, and
	// the reconciliation sweep.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		RecordRepoFactory
		PaymentRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ManifestUoW manages transactions for manifest batch operations, which
	// coordinate the manifest aggregate with its member parcels and their
	// audit trail.
	ManifestUoW interface {
		TxManager
		ParcelRepoFactory
		RecordRepoFactory
		ManifestRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}
)
