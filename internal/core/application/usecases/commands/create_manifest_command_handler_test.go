package commands_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/manifest"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateManifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	manifestID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	first := testBarcode(t, "TN-2024-000300")
	second := testBarcode(t, "TN-2024-000301")
	cmd, err := commands.NewCreateManifestCommand(manifestID, clientID, []kernel.Barcode{first, second})
	require.NoError(t, err)

	members := []*parcel.Parcel{
		storedClientParcel(t, first, clientID, parcel.StatusAtWarehouse),
		storedClientParcel(t, second, clientID, parcel.StatusReturnedToWarehouse),
	}

	repo := new(MockParcelRepository)
	manifests := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	locker := new(MockBarcodeLocker)

	locker.On("AcquireAll", ctx, []string{first.String(), second.String()}).Return(nil, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("GetAllByBarcodes", mock.Anything, []kernel.Barcode{first, second}).Return(members, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Twice()
	uow.On("ManifestRepository").Return(manifests).Once()
	manifests.On("Add", mock.Anything, mock.MatchedBy(func(m *manifest.Manifest) bool {
		return m.ID().IsEqual(manifestID) && m.Size() == 2
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateManifestCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))

	for _, p := range members {
		require.NotNil(t, p.ManifestID())
		require.True(t, p.ManifestID().IsEqual(manifestID))
	}
	manifests.AssertExpectations(t)
	uow.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestCreateManifestCommandHandler_Handle_IneligibleStatusFailsBatch(t *testing.T) {
	ctx := t.Context()
	manifestID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	first := testBarcode(t, "TN-2024-000302")
	second := testBarcode(t, "TN-2024-000303")
	cmd, err := commands.NewCreateManifestCommand(manifestID, clientID, []kernel.Barcode{first, second})
	require.NoError(t, err)

	members := []*parcel.Parcel{
		storedClientParcel(t, first, clientID, parcel.StatusAtWarehouse),
		storedClientParcel(t, second, clientID, parcel.StatusOutForDelivery),
	}

	repo := new(MockParcelRepository)
	uow := new(MockManifestUoW)
	locker := new(MockBarcodeLocker)

	locker.On("AcquireAll", ctx, mock.Anything).Return(nil, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("GetAllByBarcodes", mock.Anything, mock.Anything).Return(members, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateManifestCommandHandler(factory, locker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, parcel.ErrIneligibleParcel)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateManifestCommandHandler_Handle_ForeignParcelFailsBatch(t *testing.T) {
	ctx := t.Context()
	manifestID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	barcode := testBarcode(t, "TN-2024-000304")
	cmd, err := commands.NewCreateManifestCommand(manifestID, clientID, []kernel.Barcode{barcode})
	require.NoError(t, err)

	foreign := storedClientParcel(t, barcode, kernel.NewUUID(), parcel.StatusAtWarehouse)

	repo := new(MockParcelRepository)
	uow := new(MockManifestUoW)
	locker := new(MockBarcodeLocker)

	locker.On("AcquireAll", ctx, mock.Anything).Return(nil, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("GetAllByBarcodes", mock.Anything, mock.Anything).Return([]*parcel.Parcel{foreign}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateManifestCommandHandler(factory, locker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, parcel.ErrIneligibleParcel)
	require.Nil(t, foreign.ManifestID())
}

func TestCreateManifestCommand_RejectsDuplicates(t *testing.T) {
	barcode := testBarcode(t, "TN-2024-000305")
	_, err := commands.NewCreateManifestCommand(kernel.NewUUID(), kernel.NewUUID(), []kernel.Barcode{barcode, barcode})
	require.ErrorIs(t, err, manifest.ErrDuplicateMember)
}

func TestCreateManifestCommand_RejectsEmptySelection(t *testing.T) {
	_, err := commands.NewCreateManifestCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.ErrorIs(t, err, manifest.ErrEmptySelection)
}

// storedClientParcel builds a parcel owned by clientID in the given status.
func storedClientParcel(t *testing.T, barcode kernel.Barcode, clientID kernel.UUID, status parcel.Status) *parcel.Parcel {
	t.Helper()
	p := storedParcel(t, barcode, status, nil)
	restored, err := parcel.RestoreParcel(
		p.Barcode(), clientID, status, p.Price(), p.ArticleCount(),
		p.Recipient(), nil, "", nil, p.CreatedAt(), p.UpdatedAt(),
	)
	require.NoError(t, err)
	return restored
}
