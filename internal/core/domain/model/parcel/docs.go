// Package parcel provides the domain model of the parcel lifecycle workflow.
// It implements the Parcel aggregate root with its status state machine and
// append-only transition audit trail.
//
// The package includes:
//   - Parcel: The aggregate root holding identity, pricing, recipient data,
//     manifest attachment, and the current lifecycle status
//   - Status: The closed status enum with its legal-transition table, the
//     single source of truth for every workflow rule in the system
//   - TransitionRecord: The audit entry produced by every status move
//
// Key business rules:
//   - Status moves only happen through the transition table; illegal moves
//     fail with IllegalTransitionError and leave the parcel untouched
//   - Parcels are soft-deleted by transitioning to ABANDONNEE, never removed
//   - A parcel belongs to at most one open manifest, and only while in a
//     warehouse status (AU_DEPOT, RETOUR_DEPOT)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
