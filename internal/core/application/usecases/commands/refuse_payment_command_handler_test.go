package commands_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/payment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefusePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	barcode := testBarcode(t, "TN-2024-000340")
	pay := pendingPayment(t, barcode)
	cmd, err := commands.NewRefusePaymentCommand(pay.ID(), "courier-7")
	require.NoError(t, err)

	payments := new(MockPaymentRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Get", mock.Anything, pay.ID()).Return(pay, nil).Once(),
		payments.On("Update", mock.Anything, pay).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefusePaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, payment.StatusRefused, pay.Status())
	payments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRefusePaymentCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()
	barcode := testBarcode(t, "TN-2024-000341")
	pay := pendingPayment(t, barcode)
	require.NoError(t, pay.Confirm())
	cmd, err := commands.NewRefusePaymentCommand(pay.ID(), "courier-7")
	require.NoError(t, err)

	payments := new(MockPaymentRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Get", mock.Anything, pay.ID()).Return(pay, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefusePaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, payment.ErrAlreadyResolved)
	require.Equal(t, payment.StatusPaid, pay.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
