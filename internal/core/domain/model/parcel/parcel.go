package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through NewParcel or RestoreParcel. This ensures all parcels are validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

	// ErrIneligibleParcel is the sentinel wrapped by every IneligibleParcelError.
	ErrIneligibleParcel = errors.New("parcel is not eligible for the operation")
)

// IneligibleParcelError reports a parcel whose current state is incompatible
// with a requested manifest or payment operation, e.g. adding a parcel that is
// not at the warehouse to a manifest, or double-attaching one.
type IneligibleParcelError struct {
	Barcode kernel.Barcode
	Reason  string
}

// NewIneligibleParcelError creates an IneligibleParcelError naming the parcel.
func NewIneligibleParcelError(barcode kernel.Barcode, reason string) *IneligibleParcelError {
	return &IneligibleParcelError{Barcode: barcode, Reason: reason}
}

func (e *IneligibleParcelError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrIneligibleParcel, e.Barcode, e.Reason)
}

func (e *IneligibleParcelError) Unwrap() error {
	return ErrIneligibleParcel
}

// Parcel represents a trackable shipment, the root entity of the workflow.
// It is the aggregate managing the delivery lifecycle from the client's
// pickup request through delivery and payment, or through a return flow.
//
// Parcel follows these invariants:
//   - The barcode is immutable and identifies the parcel for its whole life
//   - Status is always a member of the status enum, moved only through the
//     transition table (see Status)
//   - Price is never negative; article count is at least 1
//   - The parcel belongs to at most one open manifest at a time
//   - Parcels are never physically deleted; StatusAbandoned is soft deletion
//
// The struct uses private fields to ensure encapsulation; every status move
// goes through TransitionTo, which also produces the audit record.
type Parcel struct {
	// barcode is the immutable label identifier
	barcode kernel.Barcode

	// clientID references the owning client
	clientID kernel.UUID

	// status is the current lifecycle state
	status Status

	// price is the amount collected from the recipient on delivery
	price kernel.Money

	// articleCount is the number of articles in the parcel (>= 1)
	articleCount int

	// recipient holds the delivery contact details
	recipient Recipient

	// exchange is the optional linked exchange item (nil if none)
	exchange *Exchange

	// note is optional free text from the client
	note string

	// manifestID is the open manifest holding this parcel (nil if unattached)
	manifestID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// Recipient holds the delivery contact details of a parcel.
// It is a plain value object; empty name or phone is rejected at construction.
type Recipient struct {
	Name        string
	Phone       string
	Address     string
	Governorate string
	City        string
}

// Validate checks the recipient's mandatory fields.
func (r Recipient) Validate() error {
	if r.Name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	if r.Phone == "" {
		return errs.NewValueIsRequiredError("recipient phone")
	}
	return nil
}

// Exchange links a parcel to the item the recipient hands back on delivery.
type Exchange struct {
	Barcode      kernel.Barcode
	ArticleCount int
}

// Validate checks the exchange linkage fields.
func (e Exchange) Validate() error {
	if err := e.Barcode.Validate(); err != nil {
		return err
	}
	if e.ArticleCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"exchange article count",
			fmt.Errorf("%d is less than 1", e.ArticleCount),
		)
	}
	return nil
}

// NewParcel creates a Parcel from a client pickup request. The parcel starts
// in StatusPending with the creation and modification timestamps set to now.
//
// Parameters:
//   - barcode: immutable label identifier
//   - clientID: owning client
//   - price: amount to collect on delivery
//   - articleCount: number of articles (>= 1)
//   - recipient: delivery contact details
//   - now: creation time, supplied by the caller for deterministic stamping
func NewParcel(
	barcode kernel.Barcode,
	clientID kernel.UUID,
	price kernel.Money,
	articleCount int,
	recipient Recipient,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setBarcode(barcode),
		p.setClientID(clientID),
		p.setPrice(price),
		p.setArticleCount(articleCount),
		p.setRecipient(recipient),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence. Unlike NewParcel it
// accepts any valid status and an optional manifest attachment, but applies
// the same field validation.
func RestoreParcel(
	barcode kernel.Barcode,
	clientID kernel.UUID,
	status Status,
	price kernel.Money,
	articleCount int,
	recipient Recipient,
	exchange *Exchange,
	note string,
	manifestID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Parcel{
		status:        status,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setBarcode(barcode),
		p.setClientID(clientID),
		p.setPrice(price),
		p.setArticleCount(articleCount),
		p.setRecipient(recipient),
		p.setExchange(exchange),
		p.setManifestID(manifestID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was constructed through NewParcel or RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by barcode.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.barcode.IsEqual(other.barcode)
}

// Barcode returns the parcel's immutable label identifier.
func (p *Parcel) Barcode() kernel.Barcode {
	return p.barcode
}

// ClientID returns the owning client's identifier.
func (p *Parcel) ClientID() kernel.UUID {
	return p.clientID
}

// Status returns the current lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// Price returns the amount collected from the recipient on delivery.
func (p *Parcel) Price() kernel.Money {
	return p.price
}

// ArticleCount returns the number of articles in the parcel.
func (p *Parcel) ArticleCount() int {
	return p.articleCount
}

// Recipient returns the delivery contact details.
func (p *Parcel) Recipient() Recipient {
	return p.recipient
}

// Exchange returns the linked exchange item, or nil if there is none.
func (p *Parcel) Exchange() *Exchange {
	return p.exchange
}

// Note returns the client's free-text note.
func (p *Parcel) Note() string {
	return p.note
}

// ManifestID returns the open manifest holding this parcel, or nil.
func (p *Parcel) ManifestID() *kernel.UUID {
	return p.manifestID
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last-modified timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetNote replaces the client's free-text note.
func (p *Parcel) SetNote(note string) {
	p.note = note
}

// SetExchange attaches an exchange linkage to the parcel.
func (p *Parcel) SetExchange(exchange Exchange) error {
	return p.setExchange(&exchange)
}

// TransitionTo moves the parcel to target, stamping the modification time and
// returning the audit record for the move. The transition is validated against
// the table; on failure the parcel is left untouched.
//
// Parameters:
//   - target: the requested status
//   - actor: identity of the courier/agent performing the move, from the
//     session context; trusted as supplied
//   - comment: optional operator comment recorded with the move
//   - now: timestamp used for both the parcel and the audit record
func (p *Parcel) TransitionTo(target Status, actor, comment string, now time.Time) (TransitionRecord, error) {
	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return TransitionRecord{}, err
	}

	record := NewTransitionRecord(p.barcode, p.status, newStatus, actor, comment, now)
	p.status = newStatus
	p.updatedAt = now
	return record, nil
}

// AttachToManifest marks the parcel as held by an open manifest. Manifest
// membership is an overlay: the status does not change, but the parcel must be
// manifest-eligible and not already attached.
func (p *Parcel) AttachToManifest(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	if !p.status.IsManifestEligible() {
		return NewIneligibleParcelError(p.barcode,
			fmt.Sprintf("status %s is not manifest-eligible", p.status))
	}
	if p.manifestID != nil {
		return NewIneligibleParcelError(p.barcode, "already attached to a manifest")
	}

	p.manifestID = &manifestID
	return nil
}

// DetachFromManifest clears the manifest attachment. Safe to call on an
// unattached parcel.
func (p *Parcel) DetachFromManifest() {
	p.manifestID = nil
}

func (p *Parcel) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	p.barcode = barcode
	return nil
}

func (p *Parcel) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	p.clientID = clientID
	return nil
}

func (p *Parcel) setPrice(price kernel.Money) error {
	p.price = price
	return nil
}

func (p *Parcel) setArticleCount(articleCount int) error {
	if articleCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"article count",
			fmt.Errorf("%d is less than 1", articleCount),
		)
	}
	p.articleCount = articleCount
	return nil
}

func (p *Parcel) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setExchange(exchange *Exchange) error {
	if exchange == nil {
		p.exchange = nil
		return nil
	}
	if err := exchange.Validate(); err != nil {
		return err
	}
	p.exchange = exchange
	return nil
}

func (p *Parcel) setManifestID(manifestID *kernel.UUID) error {
	if manifestID == nil {
		p.manifestID = nil
		return nil
	}
	if err := manifestID.Validate(); err != nil {
		return err
	}
	p.manifestID = manifestID
	return nil
}
