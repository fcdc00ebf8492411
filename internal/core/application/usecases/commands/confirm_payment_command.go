package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents a request to mark a COD payment as
// collected. Confirmation also settles the parcel: a delivered parcel moves
// to LIVRES_PAYE in the same transaction.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actor     string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm the payment
// identified by paymentID.
func NewConfirmPaymentCommand(paymentID kernel.UUID, actor string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to confirm.
func (c ConfirmPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Actor returns the identity confirming the collection.
func (c ConfirmPaymentCommand) Actor() string {
	return c.actor
}

func (c *ConfirmPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}
