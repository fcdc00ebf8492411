package commands

import (
	"context"
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
	"parcelflow/internal/pkg/errs"
)

// ApplyTransitionCommandHandler orchestrates a single parcel status move.
// It is the only write path for parcel statuses: the per-barcode lock fences
// concurrent scans of the same label, the TransitionEngine enforces the
// transition table, and the transaction makes the parcel update, the audit
// record, and any payment creation atomic.
//
// Two concurrent calls on the same barcode resolve as exactly one success:
// the loser either times out on the lock (retryable) or, once it acquires the
// lock and re-reads the moved parcel, fails with IllegalTransition.
//
// Example:
//
//	handler := NewApplyTransitionCommandHandler(uowFactory, locker)
//	cmd, _ := NewApplyTransitionCommand(barcode, parcel.StatusDelivered, "courier-7", "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, parcel.ErrIllegalTransition):
//	    // Show the rejection to the operator
//	case errors.Is(err, keylock.ErrLockTimeout):
//	    // Retry with backoff
//	}
type ApplyTransitionCommandHandler struct {
	uowFactory ParcelUoWFactory
	locker     ports.BarcodeLocker
	engine     services.TransitionEngine
}

// NewApplyTransitionCommandHandler creates a handler for status moves.
func NewApplyTransitionCommandHandler(
	uowFactory ParcelUoWFactory,
	locker ports.BarcodeLocker,
) ApplyTransitionCommandHandler {
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the transition command: lock, read, move, persist.
// On success exactly one TransitionRecord is appended; on failure nothing is
// mutated. First arrival into a delivered status creates the parcel's payment
// unless one already exists.
func (h ApplyTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyTransitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locker.Acquire(ctx, cmd.Barcode().String())
	if err != nil {
		return err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.GetByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return err
	}

	now := time.Now()
	result, err := h.engine.Apply(p, cmd.Target(), cmd.Actor(), cmd.Comment(), now)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.TransitionRecordRepository().Add(ctx, result.Record); err != nil {
		return err
	}

	if result.CreatePayment {
		if err = h.ensurePayment(ctx, uow, p.Barcode(), p.Price(), now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// ensurePayment creates the parcel's pending payment unless one already
// exists, keeping repeated delivery cycles (e.g. after an exchange) from
// double-billing.
func (h ApplyTransitionCommandHandler) ensurePayment(
	ctx context.Context,
	uow ParcelUoW,
	barcode kernel.Barcode,
	price kernel.Money,
	now time.Time,
) error {
	paymentRepo := uow.PaymentRepository()

	_, err := paymentRepo.GetByBarcode(ctx, barcode)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	pay, err := payment.NewPayment(kernel.NewUUID(), barcode, price, now)
	if err != nil {
		return err
	}

	return paymentRepo.Add(ctx, pay)
}
