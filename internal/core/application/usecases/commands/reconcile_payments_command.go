package commands

import (
	"errors"

	"parcelflow/internal/pkg/guard"
)

var ErrReconcilePaymentsCommandIsNotConstructed = errors.New(
	"ReconcilePaymentsCommand must be created via NewReconcilePaymentsCommand constructor",
)

// ReconcilePaymentsCommand triggers the payment backfill sweep: every
// delivered parcel without a payment row gets a pending one. The sweep is the
// safety net for payments missed by the transition path, and is idempotent.
//
// Example:
//
//	cmd := NewReconcilePaymentsCommand()
//	handler := NewReconcilePaymentsCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPaymentsToReconcile) {
//	    log.Println("Nothing to backfill")
//	}
type ReconcilePaymentsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcilePaymentsCommand creates a new command to trigger the sweep.
func NewReconcilePaymentsCommand() ReconcilePaymentsCommand {
	return ReconcilePaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcilePaymentsCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcilePaymentsCommandIsNotConstructed,
	)
}
