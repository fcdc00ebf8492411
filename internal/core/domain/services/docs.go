// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the parcel workflow. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionEngine: A domain service applying validated status moves to
//     parcels, producing the audit record and signalling payment creation
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
