package parcel

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
)

// TransitionRecord is an append-only audit entry written each time a parcel's
// status changes. The sequence of records for a barcode, ordered by timestamp,
// is always consistent with the transition table because records are produced
// exclusively by Parcel.TransitionTo.
type TransitionRecord struct {
	barcode    kernel.Barcode
	fromStatus Status
	toStatus   Status
	actor      string
	comment    string
	at         time.Time
}

// NewTransitionRecord creates an audit entry for a status move.
// Actor and comment may be empty; the timestamp is the same one stamped on the
// parcel's last-modified field.
func NewTransitionRecord(
	barcode kernel.Barcode,
	fromStatus, toStatus Status,
	actor, comment string,
	at time.Time,
) TransitionRecord {
	return TransitionRecord{
		barcode:    barcode,
		fromStatus: fromStatus,
		toStatus:   toStatus,
		actor:      actor,
		comment:    comment,
		at:         at,
	}
}

// Barcode returns the parcel the record belongs to.
func (r TransitionRecord) Barcode() kernel.Barcode {
	return r.barcode
}

// FromStatus returns the status before the move.
func (r TransitionRecord) FromStatus() Status {
	return r.fromStatus
}

// ToStatus returns the status after the move.
func (r TransitionRecord) ToStatus() Status {
	return r.toStatus
}

// Actor returns the courier/agent identity attached to the move.
func (r TransitionRecord) Actor() string {
	return r.actor
}

// Comment returns the optional operator comment.
func (r TransitionRecord) Comment() string {
	return r.comment
}

// At returns the time of the move.
func (r TransitionRecord) At() time.Time {
	return r.at
}
