package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrAbandonParcelCommandIsNotConstructed = errors.New(
	"AbandonParcelCommand must be created via NewAbandonParcelCommand constructor",
)

// AbandonParcelCommand represents a request to write a parcel off before it
// ever went out for delivery. Abandonment is terminal and requires a reason so
// the audit trail explains why the parcel left the workflow.
type AbandonParcelCommand struct { //nolint:recvcheck //using for validation
	barcode kernel.Barcode
	actor   string
	reason  string

	guard guard.ConstructorGuard
}

// NewAbandonParcelCommand creates a command to abandon a parcel.
// The reason is mandatory: a terminal write-off without an explanation is a
// support ticket waiting to happen.
func NewAbandonParcelCommand(barcode kernel.Barcode, actor, reason string) (AbandonParcelCommand, error) {
	cmd := AbandonParcelCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBarcode(barcode),
		cmd.setReason(reason),
	); err != nil {
		return AbandonParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AbandonParcelCommand) Validate() error {
	return c.guard.Validate(ErrAbandonParcelCommandIsNotConstructed)
}

// Barcode returns the parcel to abandon.
func (c AbandonParcelCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// Actor returns the identity performing the write-off.
func (c AbandonParcelCommand) Actor() string {
	return c.actor
}

// Reason returns the mandatory abandonment reason.
func (c AbandonParcelCommand) Reason() string {
	return c.reason
}

func (c *AbandonParcelCommand) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	c.barcode = barcode
	return nil
}

func (c *AbandonParcelCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
