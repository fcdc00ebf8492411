package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/guard"
)

var ErrApplyTransitionCommandIsNotConstructed = errors.New(
	"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
)

// ApplyTransitionCommand represents a request to move one parcel to a new
// status: a scan, a UI action, or an API call. The target status has already
// been resolved from its wire name at the boundary, so an unknown status can
// never reach the handler.
//
// Example:
//
//	barcode, _ := kernel.NewBarcode("TN-2024-000187")
//	target, _ := parcel.StatusFromString("EN_COURS")
//	cmd, err := NewApplyTransitionCommand(barcode, target, "courier-7", "")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewApplyTransitionCommandHandler(uowFactory, locker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // Surface IllegalTransition to the operator; never auto-retry it
//	}
type ApplyTransitionCommand struct { //nolint:recvcheck //using for validation
	barcode kernel.Barcode
	target  parcel.Status
	actor   string
	comment string

	guard guard.ConstructorGuard
}

// NewApplyTransitionCommand creates a command to move a parcel to target.
// The actor comes from the caller's session context and is trusted as-is;
// comment is optional operator text recorded with the audit entry.
func NewApplyTransitionCommand(
	barcode kernel.Barcode,
	target parcel.Status,
	actor, comment string,
) (ApplyTransitionCommand, error) {
	cmd := ApplyTransitionCommand{
		actor:   actor,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBarcode(barcode),
		cmd.setTarget(target),
	); err != nil {
		return ApplyTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}

// Barcode returns the parcel to move.
func (c ApplyTransitionCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// Target returns the requested status.
func (c ApplyTransitionCommand) Target() parcel.Status {
	return c.target
}

// Actor returns the identity performing the move.
func (c ApplyTransitionCommand) Actor() string {
	return c.actor
}

// Comment returns the optional operator comment.
func (c ApplyTransitionCommand) Comment() string {
	return c.comment
}

func (c *ApplyTransitionCommand) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	c.barcode = barcode
	return nil
}

func (c *ApplyTransitionCommand) setTarget(target parcel.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
