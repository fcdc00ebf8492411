package commands_test

import (
	"testing"
	"time"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/manifest"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveManifestParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	manifestID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	removed := testBarcode(t, "TN-2024-000310")
	kept := testBarcode(t, "TN-2024-000311")
	cmd, err := commands.NewRemoveManifestParcelCommand(manifestID, removed, "ops-1")
	require.NoError(t, err)

	m, err := manifest.RestoreManifest(manifestID, clientID, []kernel.Barcode{removed, kept}, time.Now())
	require.NoError(t, err)
	p := storedParcel(t, removed, parcel.StatusAtWarehouse, &manifestID)

	repo := new(MockParcelRepository)
	records := new(MockTransitionRecordRepository)
	manifests := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	locker := new(MockBarcodeLocker)
	mock.InOrder(
		locker.On("Acquire", ctx, removed.String()).Return(nil, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(manifests).Once(),
		manifests.On("Get", mock.Anything, manifestID).Return(m, nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, removed).Return(p, nil).Once(),
		uow.On("TransitionRecordRepository").Return(records).Once(),
		records.On("Add", mock.Anything, mock.MatchedBy(func(r parcel.TransitionRecord) bool {
			return r.FromStatus() == parcel.StatusAtWarehouse && r.ToStatus() == parcel.StatusPending
		})).Return(nil).Once(),
		repo.On("Update", mock.Anything, p).Return(nil).Once(),
		manifests.On("Update", mock.Anything, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveManifestParcelCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, parcel.StatusPending, p.Status())
	require.Nil(t, p.ManifestID())
	require.Equal(t, []kernel.Barcode{kept}, m.Barcodes())
	manifests.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveManifestParcelCommandHandler_Handle_LastMemberDeletesManifest(t *testing.T) {
	ctx := t.Context()
	manifestID := kernel.NewUUID()
	barcode := testBarcode(t, "TN-2024-000312")
	cmd, err := commands.NewRemoveManifestParcelCommand(manifestID, barcode, "ops-1")
	require.NoError(t, err)

	m, err := manifest.RestoreManifest(manifestID, kernel.NewUUID(), []kernel.Barcode{barcode}, time.Now())
	require.NoError(t, err)
	p := storedParcel(t, barcode, parcel.StatusAtWarehouse, &manifestID)

	repo := new(MockParcelRepository)
	records := new(MockTransitionRecordRepository)
	manifests := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	locker := new(MockBarcodeLocker)

	locker.On("Acquire", ctx, barcode.String()).Return(nil, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifests).Once()
	manifests.On("Get", mock.Anything, manifestID).Return(m, nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("GetByBarcode", mock.Anything, barcode).Return(p, nil).Once()
	repo.On("Update", mock.Anything, p).Return(nil).Once()
	uow.On("TransitionRecordRepository").Return(records).Once()
	records.On("Add", mock.Anything, mock.AnythingOfType("parcel.TransitionRecord")).Return(nil).Once()
	manifests.On("Delete", mock.Anything, manifestID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveManifestParcelCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))
	manifests.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	manifests.AssertExpectations(t)
}

func TestRemoveManifestParcelCommandHandler_Handle_PendingMemberDetachesWithoutRevert(t *testing.T) {
	ctx := t.Context()
	manifestID := kernel.NewUUID()
	removed := testBarcode(t, "TN-2024-000315")
	kept := testBarcode(t, "TN-2024-000316")
	cmd, err := commands.NewRemoveManifestParcelCommand(manifestID, removed, "ops-1")
	require.NoError(t, err)

	m, err := manifest.RestoreManifest(manifestID, kernel.NewUUID(), []kernel.Barcode{removed, kept}, time.Now())
	require.NoError(t, err)
	p := storedParcel(t, removed, parcel.StatusPending, &manifestID)

	repo := new(MockParcelRepository)
	records := new(MockTransitionRecordRepository)
	manifests := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	locker := new(MockBarcodeLocker)
	mock.InOrder(
		locker.On("Acquire", ctx, removed.String()).Return(nil, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(manifests).Once(),
		manifests.On("Get", mock.Anything, manifestID).Return(m, nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetByBarcode", mock.Anything, removed).Return(p, nil).Once(),
		repo.On("Update", mock.Anything, p).Return(nil).Once(),
		manifests.On("Update", mock.Anything, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveManifestParcelCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, parcel.StatusPending, p.Status())
	require.Nil(t, p.ManifestID())
	records.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "TransitionRecordRepository")
	manifests.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveManifestParcelCommandHandler_Handle_NotAMember(t *testing.T) {
	ctx := t.Context()
	manifestID := kernel.NewUUID()
	member := testBarcode(t, "TN-2024-000313")
	stranger := testBarcode(t, "TN-2024-000314")
	cmd, err := commands.NewRemoveManifestParcelCommand(manifestID, stranger, "ops-1")
	require.NoError(t, err)

	m, err := manifest.RestoreManifest(manifestID, kernel.NewUUID(), []kernel.Barcode{member}, time.Now())
	require.NoError(t, err)

	manifests := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	locker := new(MockBarcodeLocker)
	mock.InOrder(
		locker.On("Acquire", ctx, stranger.String()).Return(nil, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(manifests).Once(),
		manifests.On("Get", mock.Anything, manifestID).Return(m, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveManifestParcelCommandHandler(factory, locker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, manifest.ErrNotAMember)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
