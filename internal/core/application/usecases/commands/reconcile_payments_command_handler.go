package commands

import (
	"context"
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"
)

// ErrNoPaymentsToReconcile signals that the sweep found no delivered parcel
// missing its payment. Callers treat it as a quiet success.
var ErrNoPaymentsToReconcile = errors.New("no payments to reconcile")

// ReconcilePaymentsCommandHandler backfills payments for delivered parcels
// that have none. The transition path creates payments on arrival into a
// delivered status; this sweep catches parcels imported from legacy data or
// written before a crash cut the payment insert off.
type ReconcilePaymentsCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewReconcilePaymentsCommandHandler creates a handler for the backfill sweep.
func NewReconcilePaymentsCommandHandler(uowFactory ParcelUoWFactory) ReconcilePaymentsCommandHandler {
	return ReconcilePaymentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep in one transaction. Each missing payment is
// created pending, priced from its parcel. Returns ErrNoPaymentsToReconcile
// when there is nothing to do.
func (h ReconcilePaymentsCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentsCommand) error {
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

	parcels, err := uow.ParcelRepository().GetAllDeliveredWithoutPayment(ctx)
	if err != nil {
		return err
	}
	if len(parcels) == 0 {
		return ErrNoPaymentsToReconcile
	}

	paymentRepo := uow.PaymentRepository()
	now := time.Now()
	for _, p := range parcels {
		pay, err := payment.NewPayment(kernel.NewUUID(), p.Barcode(), p.Price(), now)
		if err != nil {
			return err
		}

		if err = paymentRepo.Add(ctx, pay); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
