package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// TransitionRecordRepository returns a TransitionRecordRepository bound to
	// the current transaction.
	TransitionRecordRepository() TransitionRecordRepository

	// ManifestRepository returns a ManifestRepository bound to the current transaction.
	ManifestRepository() ManifestRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository
}

// BarcodeLocker serializes operations that mutate the same parcel.
// Acquire blocks for at most a bounded wait; contention past the bound fails
// with keylock.ErrLockTimeout, which callers treat as retryable.
type BarcodeLocker interface {
	// Acquire takes the exclusive lock for one barcode and returns its
	// release function.
	Acquire(ctx context.Context, barcode string) (func(), error)

	// AcquireAll takes the locks for a set of barcodes in a deterministic
	// order, avoiding deadlock between overlapping batch operations.
	AcquireAll(ctx context.Context, barcodes []string) (func(), error)
}
