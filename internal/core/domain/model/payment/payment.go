// Package payment provides the Payment aggregate: the money owed to a client
// for a delivered parcel.
//
// A payment is created the first time its parcel reaches a delivered status
// and is never deleted. It resolves exactly once, to PAYE or REFUSE; any
// further resolution attempt fails with AlreadyResolvedError so revenue is
// never double-counted.
package payment

import (
	"errors"
	"fmt"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

	// ErrAlreadyResolved is the sentinel wrapped by every AlreadyResolvedError.
	ErrAlreadyResolved = errors.New("payment is already resolved")
)

// AlreadyResolvedError reports a confirmation or refusal attempt on a payment
// that has already left EN_ATTENTE. Deterministic; callers must surface it,
// not retry.
type AlreadyResolvedError struct {
	PaymentID kernel.UUID
	Status    Status
}

// NewAlreadyResolvedError creates an AlreadyResolvedError for the payment.
func NewAlreadyResolvedError(paymentID kernel.UUID, status Status) *AlreadyResolvedError {
	return &AlreadyResolvedError{PaymentID: paymentID, Status: status}
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s: payment %s is %s", ErrAlreadyResolved, e.PaymentID, e.Status)
}

func (e *AlreadyResolvedError) Unwrap() error {
	return ErrAlreadyResolved
}

// Status represents the resolution state of a payment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending (EN_ATTENTE) means the payment awaits confirmation.
	StatusPending

	// StatusPaid (PAYE) means the payment was confirmed and settled.
	StatusPaid

	// StatusRefused (REFUSE) means the payment was rejected by the operator.
	StatusRefused
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		StatusPending: "EN_ATTENTE",
		StatusPaid:    "PAYE",
		StatusRefused: "REFUSE",
	}
}

// StatusFromString resolves a wire name to its Status, rejecting unknown
// names at the boundary.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a known payment status", s)
}

// Validate checks if the Status value is a member of the enum.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return fmt.Errorf("%d is not a valid payment status", s)
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Payment represents the amount owed to the client for one delivered parcel.
// The amount always equals the parcel's price at delivery time.
type Payment struct {
	id        kernel.UUID
	barcode   kernel.Barcode
	amount    kernel.Money
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a pending payment for a delivered parcel.
// The amount must be the parcel's price.
func NewPayment(id kernel.UUID, barcode kernel.Barcode, amount kernel.Money, now time.Time) (*Payment, error) {
	p := &Payment{
		status:        StatusPending,
		amount:        amount,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setBarcode(barcode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	barcode kernel.Barcode,
	amount kernel.Money,
	status Status,
	createdAt time.Time,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p, err := NewPayment(id, barcode, amount, createdAt)
	if err != nil {
		return nil, err
	}

	p.status = status
	return p, nil
}

// Validate ensures the Payment was constructed through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Barcode returns the delivered parcel the payment settles.
func (p *Payment) Barcode() kernel.Barcode {
	return p.barcode
}

// Amount returns the amount owed, equal to the parcel's price.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the resolution state.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// Confirm settles the payment. Legal only while the payment is pending;
// a second attempt fails with AlreadyResolvedError rather than being
// silently accepted.
func (p *Payment) Confirm() error {
	if p.status != StatusPending {
		return NewAlreadyResolvedError(p.id, p.status)
	}
	p.status = StatusPaid
	return nil
}

// Refuse rejects the payment. Legal only while the payment is pending.
func (p *Payment) Refuse() error {
	if p.status != StatusPending {
		return NewAlreadyResolvedError(p.id, p.status)
	}
	p.status = StatusRefused
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	p.barcode = barcode
	return nil
}
