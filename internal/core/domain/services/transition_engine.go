package services

import (
	"time"

	"parcelflow/internal/core/domain/model/parcel"
)

// TransitionEngine is the domain service through which every parcel status
// change in the system passes. It validates the move against the status
// transition table, applies it to the aggregate, and reports the side effects
// the caller must persist.
//
// Key responsibilities:
//   - Validating the requested move against the single transition table
//   - Producing exactly one audit record per successful move
//   - Signalling when the move requires a payment to be created (first
//     arrival into a delivered status)
//
// The engine mutates only the in-memory aggregate; persistence, locking, and
// transaction control belong to the application layer. On failure the parcel
// is left untouched, so callers can safely roll back by discarding it.
//
// Example usage:
//
//	engine := services.NewTransitionEngine()
//	result, err := engine.Apply(p, parcel.StatusDelivered, "courier-7", "", time.Now())
//	if err != nil {
//	    // Illegal transition; p is unchanged
//	    return err
//	}
//	// Persist p, append result.Record, create a payment if result.CreatePayment
type TransitionEngine struct{}

// NewTransitionEngine creates a new TransitionEngine instance.
func NewTransitionEngine() TransitionEngine {
	return TransitionEngine{}
}

// TransitionResult describes the effects of a successful status move.
type TransitionResult struct {
	// Record is the audit entry to append, stamped with the same timestamp
	// written to the parcel's last-modified field.
	Record parcel.TransitionRecord

	// CreatePayment is true when the parcel has just arrived in a delivered
	// status for the first time, which obliges the caller to create a pending
	// payment for the parcel's price unless one already exists.
	CreatePayment bool
}

// Apply moves p to target, returning the audit record and side-effect flags.
//
// Parameters:
//   - p: the parcel to move (must be a constructed aggregate)
//   - target: the requested status
//   - actor: identity performing the move, attached to the audit record
//   - comment: optional operator comment
//   - now: timestamp for both the parcel and the record
//
// Returns an IllegalTransitionError when the table forbids the move; in that
// case p is unchanged and no record is produced.
func (e TransitionEngine) Apply(
	p *parcel.Parcel,
	target parcel.Status,
	actor, comment string,
	now time.Time,
) (TransitionResult, error) {
	if err := p.Validate(); err != nil {
		return TransitionResult{}, err
	}

	wasDelivered := p.Status().IsDelivered()

	record, err := p.TransitionTo(target, actor, comment, now)
	if err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		Record:        record,
		CreatePayment: !wasDelivered && p.Status().IsDelivered(),
	}, nil
}
