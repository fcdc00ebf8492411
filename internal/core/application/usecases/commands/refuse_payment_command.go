package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrRefusePaymentCommandIsNotConstructed = errors.New(
	"RefusePaymentCommand must be created via NewRefusePaymentCommand constructor",
)

// RefusePaymentCommand represents a request to mark a COD payment as refused
// by the recipient. Refusal resolves the payment but never moves the parcel;
// the operator decides the parcel's fate (return, retry) separately.
type RefusePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actor     string

	guard guard.ConstructorGuard
}

// NewRefusePaymentCommand creates a command to refuse the payment identified
// by paymentID.
func NewRefusePaymentCommand(paymentID kernel.UUID, actor string) (RefusePaymentCommand, error) {
	cmd := RefusePaymentCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return RefusePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefusePaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefusePaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to refuse.
func (c RefusePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Actor returns the identity recording the refusal.
func (c RefusePaymentCommand) Actor() string {
	return c.actor
}

func (c *RefusePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}
