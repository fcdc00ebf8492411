// Package kernel provides core domain primitives for the parcel workflow service.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Barcode: A value object for parcel label identifiers as read by scanners
//   - Money: A decimal-backed value object for prices, totals, and payment amounts
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
