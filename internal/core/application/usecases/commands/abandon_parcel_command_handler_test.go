package commands_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAbandonParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	barcode := testBarcode(t, "TN-2024-000210")
	cmd, err := commands.NewAbandonParcelCommand(barcode, "ops-1", "client cancelled the shipment")
	require.NoError(t, err)

	p := storedParcel(t, barcode, parcel.StatusPending, nil)

	repo := new(MockParcelRepository)
	records := new(MockTransitionRecordRepository)
	uow := new(MockParcelUoW)
	locker := new(MockBarcodeLocker)
	mock.InOrder(
		locker.On("Acquire", ctx, barcode.String()).Return(nil, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, barcode).Return(p, nil).Once(),
		repo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("TransitionRecordRepository").Return(records).Once(),
		records.On("Add", mock.Anything, mock.MatchedBy(func(r parcel.TransitionRecord) bool {
			return r.ToStatus() == parcel.StatusAbandoned && r.Comment() == "client cancelled the shipment"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAbandonParcelCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, parcel.StatusAbandoned, p.Status())
	records.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAbandonParcelCommandHandler_Handle_OutForDeliveryCannotBeAbandoned(t *testing.T) {
	ctx := t.Context()
	barcode := testBarcode(t, "TN-2024-000211")
	cmd, err := commands.NewAbandonParcelCommand(barcode, "ops-1", "late cancellation")
	require.NoError(t, err)

	p := storedParcel(t, barcode, parcel.StatusOutForDelivery, nil)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	locker := new(MockBarcodeLocker)
	mock.InOrder(
		locker.On("Acquire", ctx, barcode.String()).Return(nil, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, barcode).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAbandonParcelCommandHandler(factory, locker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, parcel.ErrIllegalTransition)
	require.Equal(t, parcel.StatusOutForDelivery, p.Status())
	uow.AssertExpectations(t)
}

func TestAbandonParcelCommand_RequiresReason(t *testing.T) {
	barcode := testBarcode(t, "TN-2024-000212")
	_, err := commands.NewAbandonParcelCommand(barcode, "ops-1", "")
	require.Error(t, err)
}
