package commands

import (
	"context"
)

// RefusePaymentCommandHandler marks a COD payment as refused. No barcode lock
// is needed: refusal touches only the payment row, and the aggregate's
// resolve-once guard decides a race against a concurrent confirmation.
type RefusePaymentCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRefusePaymentCommandHandler creates a handler for payment refusal.
func NewRefusePaymentCommandHandler(uowFactory ParcelUoWFactory) RefusePaymentCommandHandler {
	return RefusePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refusal. Fails with AlreadyResolved when the payment
// was confirmed or refused before.
func (h RefusePaymentCommandHandler) Handle(ctx context.Context, cmd RefusePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	pay, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = pay.Refuse(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pay); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
