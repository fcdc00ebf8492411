// Package manifest provides the Manifest aggregate: a dispatch batch grouping
// parcels for a single pickup/delivery run.
//
// A manifest holds non-owning, ordered references to parcel barcodes. Member
// order is significant because it drives the printed run sheet. Membership
// rules (warehouse eligibility, one open manifest per parcel) are enforced on
// the Parcel aggregate; this package enforces batch-level rules: no empty
// batches, no duplicate members, removals must reference actual members.
package manifest

import (
	"errors"
	"fmt"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
)

var (
	// ErrManifestIsNotConstructed is returned when a Manifest instance was not
	// created through NewManifest or RestoreManifest.
	ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest or RestoreManifest constructor")

	// ErrEmptySelection is returned when a manifest is created with no members.
	ErrEmptySelection = errors.New("manifest requires at least one parcel")

	// ErrNotAMember is the sentinel wrapped by every NotAMemberError.
	ErrNotAMember = errors.New("parcel is not a member of the manifest")

	// ErrDuplicateMember is returned when the same barcode appears twice in a
	// manifest selection.
	ErrDuplicateMember = errors.New("parcel is already a member of the manifest")
)

// NotAMemberError reports a manifest operation referencing a barcode that is
// not in the batch.
type NotAMemberError struct {
	ManifestID kernel.UUID
	Barcode    kernel.Barcode
}

// NewNotAMemberError creates a NotAMemberError for the pair.
func NewNotAMemberError(manifestID kernel.UUID, barcode kernel.Barcode) *NotAMemberError {
	return &NotAMemberError{ManifestID: manifestID, Barcode: barcode}
}

func (e *NotAMemberError) Error() string {
	return fmt.Sprintf("%s: %s not in manifest %s", ErrNotAMember, e.Barcode, e.ManifestID)
}

func (e *NotAMemberError) Unwrap() error {
	return ErrNotAMember
}

// Manifest is a dispatch batch: an ordered set of parcel barcodes owned by a
// client, grouped for a single run. Deleting a manifest detaches its members
// and reverts them to EN_ATTENTE; it never deletes parcels.
type Manifest struct {
	id        kernel.UUID
	clientID  kernel.UUID
	barcodes  []kernel.Barcode
	createdAt time.Time

	isConstructed bool
}

// NewManifest creates a dispatch batch from a caller-supplied selection.
// The selection must be non-empty and free of duplicates; insertion order is
// preserved for printing.
func NewManifest(id, clientID kernel.UUID, barcodes []kernel.Barcode, now time.Time) (*Manifest, error) {
	if len(barcodes) == 0 {
		return nil, ErrEmptySelection
	}

	m := &Manifest{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setClientID(clientID),
		m.setBarcodes(barcodes),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs a Manifest from persistence.
func RestoreManifest(id, clientID kernel.UUID, barcodes []kernel.Barcode, createdAt time.Time) (*Manifest, error) {
	return NewManifest(id, clientID, barcodes, createdAt)
}

// Validate ensures the Manifest was constructed through a constructor.
func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManifestIsNotConstructed
	}
	return nil
}

// ID returns the manifest's unique identifier.
func (m *Manifest) ID() kernel.UUID {
	return m.id
}

// ClientID returns the owning client's identifier.
func (m *Manifest) ClientID() kernel.UUID {
	return m.clientID
}

// CreatedAt returns the creation timestamp.
func (m *Manifest) CreatedAt() time.Time {
	return m.createdAt
}

// Barcodes returns the member barcodes in insertion order.
// The returned slice is a copy; mutating it does not affect the manifest.
func (m *Manifest) Barcodes() []kernel.Barcode {
	out := make([]kernel.Barcode, len(m.barcodes))
	copy(out, m.barcodes)
	return out
}

// Size returns the number of member parcels.
func (m *Manifest) Size() int {
	return len(m.barcodes)
}

// Contains reports whether barcode is a member of the batch.
func (m *Manifest) Contains(barcode kernel.Barcode) bool {
	for _, member := range m.barcodes {
		if member.IsEqual(barcode) {
			return true
		}
	}
	return false
}

// Remove detaches one member from the batch, preserving the order of the
// rest. Fails with NotAMemberError when barcode is not in the manifest.
// Removing the last member is allowed; callers decide whether an empty
// manifest should then be deleted.
func (m *Manifest) Remove(barcode kernel.Barcode) error {
	for i, member := range m.barcodes {
		if member.IsEqual(barcode) {
			m.barcodes = append(m.barcodes[:i], m.barcodes[i+1:]...)
			return nil
		}
	}
	return NewNotAMemberError(m.id, barcode)
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	m.clientID = clientID
	return nil
}

func (m *Manifest) setBarcodes(barcodes []kernel.Barcode) error {
	seen := make(map[string]bool, len(barcodes))
	members := make([]kernel.Barcode, 0, len(barcodes))

	for _, barcode := range barcodes {
		if err := barcode.Validate(); err != nil {
			return err
		}
		if seen[barcode.String()] {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, barcode)
		}
		seen[barcode.String()] = true
		members = append(members, barcode)
	}

	m.barcodes = members
	return nil
}
