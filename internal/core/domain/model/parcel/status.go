package parcel

import (
	"errors"
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine whose legal transitions are defined in a
// single table, getStatusTransitions, which every component consults. No
// caller may assume a transition is legal without asking this table.
//
// Main delivery flow:
//
//	EN_ATTENTE ──> A_ENLEVER ──> ENLEVE ──> AU_DEPOT ──> EN_COURS ──> LIVRES ──> LIVRES_PAYE
//
// Side flows cover returns (RETOUR_*), exchanges (ECHANGE re-enters the
// warehouse cycle), review holds (A_VERIFIER), and soft deletion
// (ABANDONNEE). Terminal statuses have no outgoing transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending (EN_ATTENTE) is the initial status: the client has
	// requested a pickup and the parcel is waiting to enter circulation.
	StatusPending

	// StatusReadyForPickup (A_ENLEVER) marks the parcel as scheduled for
	// courier pickup at the client's address.
	StatusReadyForPickup

	// StatusPickedUp (ENLEVE) means a courier has collected the parcel.
	StatusPickedUp

	// StatusAtWarehouse (AU_DEPOT) means the parcel has been scanned into
	// the warehouse and is eligible for manifest dispatch.
	StatusAtWarehouse

	// StatusReturnedToWarehouse (RETOUR_DEPOT) means a delivery attempt
	// failed and the parcel is back at the warehouse, still dispatchable.
	StatusReturnedToWarehouse

	// StatusOutForDelivery (EN_COURS) means the parcel is on a delivery run.
	StatusOutForDelivery

	// StatusUnderReview (A_VERIFIER) flags the parcel for operator review
	// after an anomalous scan or dispute.
	StatusUnderReview

	// StatusDelivered (LIVRES) means the recipient has the parcel but the
	// client has not yet been paid. Reaching this status creates a payment.
	StatusDelivered

	// StatusDeliveredPaid (LIVRES_PAYE) is the terminal success status:
	// delivered and the matching payment confirmed.
	StatusDeliveredPaid

	// StatusExchanged (ECHANGE) means the parcel was delivered against an
	// exchange item, which re-enters the warehouse cycle.
	StatusExchanged

	// StatusPermanentReturn (RETOUR_DEFINITIF) is the terminal failure
	// status for parcels given back permanently.
	StatusPermanentReturn

	// StatusInterAgencyReturn (RETOUR_INTER_AGENCE) means the parcel is in
	// transit between agencies on a return leg.
	StatusInterAgencyReturn

	// StatusReturnedToSender (RETOUR_EXPEDITEURS) means the parcel is on
	// its way back to the sending client.
	StatusReturnedToSender

	// StatusReturnReceivedPaid (RETOUR_RECU_PAYE) is the terminal status
	// for a settled return received by the sender.
	StatusReturnReceivedPaid

	// StatusAbandoned (ABANDONNEE) represents soft deletion. Parcels are
	// never physically removed; abandonment is terminal.
	StatusAbandoned
)

// getStatusStrings maps every Status to the wire name used by scanners,
// the REST surface, and persistence. The names are the operational French
// labels the workflow has always used.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:             "UNKNOWN",
		StatusPending:             "EN_ATTENTE",
		StatusReadyForPickup:      "A_ENLEVER",
		StatusPickedUp:            "ENLEVE",
		StatusAtWarehouse:         "AU_DEPOT",
		StatusReturnedToWarehouse: "RETOUR_DEPOT",
		StatusOutForDelivery:      "EN_COURS",
		StatusUnderReview:         "A_VERIFIER",
		StatusDelivered:           "LIVRES",
		StatusDeliveredPaid:       "LIVRES_PAYE",
		StatusExchanged:           "ECHANGE",
		StatusPermanentReturn:     "RETOUR_DEFINITIF",
		StatusInterAgencyReturn:   "RETOUR_INTER_AGENCE",
		StatusReturnedToSender:    "RETOUR_EXPEDITEURS",
		StatusReturnReceivedPaid:  "RETOUR_RECU_PAYE",
		StatusAbandoned:           "ABANDONNEE",
	}
}

// getStatusTransitions is the single source of truth for legal transitions.
// A status absent from the map, or mapped to an empty slice, is terminal.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending: {
			StatusReadyForPickup, StatusPickedUp, StatusAtWarehouse, StatusAbandoned,
		},
		StatusReadyForPickup: {
			StatusPickedUp, StatusPending, StatusAbandoned,
		},
		StatusPickedUp: {
			StatusAtWarehouse, StatusAbandoned,
		},
		StatusAtWarehouse: {
			StatusOutForDelivery, StatusPending, StatusInterAgencyReturn, StatusAbandoned,
		},
		StatusReturnedToWarehouse: {
			StatusOutForDelivery, StatusPending, StatusInterAgencyReturn,
			StatusReturnedToSender, StatusPermanentReturn,
		},
		StatusOutForDelivery: {
			StatusDelivered, StatusExchanged, StatusUnderReview, StatusReturnedToWarehouse,
		},
		StatusUnderReview: {
			StatusOutForDelivery, StatusDelivered, StatusReturnedToWarehouse,
		},
		StatusDelivered: {
			StatusDeliveredPaid,
		},
		StatusExchanged: {
			StatusAtWarehouse, StatusDeliveredPaid,
		},
		StatusInterAgencyReturn: {
			StatusReturnedToWarehouse, StatusReturnedToSender,
		},
		StatusReturnedToSender: {
			StatusReturnReceivedPaid, StatusPermanentReturn,
		},
	}
}

// AllStatuses returns every valid status, in declaration order.
func AllStatuses() []Status {
	return []Status{
		StatusPending, StatusReadyForPickup, StatusPickedUp, StatusAtWarehouse,
		StatusReturnedToWarehouse, StatusOutForDelivery, StatusUnderReview,
		StatusDelivered, StatusDeliveredPaid, StatusExchanged,
		StatusPermanentReturn, StatusInterAgencyReturn, StatusReturnedToSender,
		StatusReturnReceivedPaid, StatusAbandoned,
	}
}

// TerminalStatuses returns the statuses with no outgoing transitions.
func TerminalStatuses() []Status {
	transitions := getStatusTransitions()
	terminal := make([]Status, 0, 4)
	for _, s := range AllStatuses() {
		if len(transitions[s]) == 0 {
			terminal = append(terminal, s)
		}
	}
	return terminal
}

// StatusFromString resolves a wire name to its Status. Unknown names are
// rejected here, at the boundary, rather than surfacing later as an invalid
// transition or a silently zeroed dashboard entry.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known parcel status", s),
	)
}

// Validate checks if the Status value is a member of the enum.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getStatusTransitions()[s]) == 0
}

// IsDelivered reports whether the status means the recipient has the parcel.
// First arrival into a delivered status is what creates a payment.
func (s Status) IsDelivered() bool {
	return s == StatusDelivered || s == StatusDeliveredPaid || s == StatusExchanged
}

// IsManifestEligible reports whether a parcel in this status may be grouped
// into a dispatch manifest. Only warehouse statuses qualify.
func (s Status) IsManifestEligible() bool {
	return s == StatusAtWarehouse || s == StatusReturnedToWarehouse
}

// CanTransitionTo reports whether the transition table allows moving from
// this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from this status to target against the
// transition table and returns the new status.
//
// Returns an IllegalTransitionError naming both states when the table does
// not allow the move.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, NewIllegalTransitionError(s, target)
	}
	return target, nil
}

// ErrIllegalTransition is the sentinel wrapped by every IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError reports a requested transition that is absent from
// the transition table. It is deterministic: callers must surface it to the
// operator, never retry it.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the pair.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
