package commands

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
)

// paymentConfirmedComment is recorded on the settlement audit entry.
const paymentConfirmedComment = "payment confirmed"

// ConfirmPaymentCommandHandler marks a COD payment as collected and settles
// the parcel. A payment resolves exactly once: a second confirmation, or a
// confirmation after a refusal, fails with AlreadyResolved.
//
// The payment is read twice. The first read, outside the lock, only learns
// which barcode to lock; the second read, under the lock and inside the
// transaction, is the one the resolution is applied to.
type ConfirmPaymentCommandHandler struct {
	uowFactory ParcelUoWFactory
	locker     ports.BarcodeLocker
	engine     services.TransitionEngine
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory ParcelUoWFactory,
	locker ports.BarcodeLocker,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the confirmation. A parcel sitting in LIVRES moves to
// LIVRES_PAYE with an audit record in the same transaction; a parcel in any
// other status (an exchange still in flight, for example) keeps its status
// and only the payment resolves.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	barcode, err := h.paymentBarcode(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	release, err := h.locker.Acquire(ctx, barcode.String())
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

	paymentRepo := uow.PaymentRepository()
	pay, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = pay.Confirm(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pay); err != nil {
		return err
	}

	if err = h.settleParcel(ctx, uow, pay.Barcode(), cmd.Actor()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// paymentBarcode reads the payment outside any lock to learn which barcode
// serializes this confirmation.
func (h ConfirmPaymentCommandHandler) paymentBarcode(ctx context.Context, paymentID kernel.UUID) (kernel.Barcode, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Barcode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pay, err := uow.PaymentRepository().Get(ctx, paymentID)
	if err != nil {
		return kernel.Barcode{}, err
	}

	return pay.Barcode(), nil
}

func (h ConfirmPaymentCommandHandler) settleParcel(
	ctx context.Context,
	uow ParcelUoW,
	barcode kernel.Barcode,
	actor string,
) error {
	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return err
	}

	if p.Status() != parcel.StatusDelivered {
		return nil
	}

	result, err := h.engine.Apply(p, parcel.StatusDeliveredPaid, actor, paymentConfirmedComment, time.Now())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.TransitionRecordRepository().Add(ctx, result.Record)
}
