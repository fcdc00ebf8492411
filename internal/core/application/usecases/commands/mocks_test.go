package commands_test

import (
	"context"
	"testing"
	"time"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/manifest"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/payment"
	"parcelflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*parcel.Parcel, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllByBarcodes(ctx context.Context, barcodes []kernel.Barcode) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, barcodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllDeliveredWithoutPayment(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockTransitionRecordRepository struct{ mock.Mock }

func (m *MockTransitionRecordRepository) Add(ctx context.Context, record parcel.TransitionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransitionRecordRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) ([]parcel.TransitionRecord, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]parcel.TransitionRecord), args.Error(1)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, agg *manifest.Manifest) error {
	args := m.Called(ctx, agg)
	return args.Error(0)
}

func (m *MockManifestRepository) Update(ctx context.Context, agg *manifest.Manifest) error {
	args := m.Called(ctx, agg)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, agg *payment.Payment) error {
	args := m.Called(ctx, agg)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, agg *payment.Payment) error {
	args := m.Called(ctx, agg)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*payment.Payment, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockParcelUoW) TransitionRecordRepository() ports.TransitionRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.TransitionRecordRepository)
}

func (m *MockParcelUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockManifestUoW struct{ mock.Mock }

func (m *MockManifestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockManifestUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockManifestUoW) TransitionRecordRepository() ports.TransitionRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.TransitionRecordRepository)
}

func (m *MockManifestUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockBarcodeLocker struct{ mock.Mock }

func (m *MockBarcodeLocker) Acquire(ctx context.Context, barcode string) (func(), error) {
	args := m.Called(ctx, barcode)
	if fn, ok := args.Get(0).(func()); ok {
		return fn, args.Error(1)
	}
	return func() {}, args.Error(1)
}

func (m *MockBarcodeLocker) AcquireAll(ctx context.Context, barcodes []string) (func(), error) {
	args := m.Called(ctx, barcodes)
	if fn, ok := args.Get(0).(func()); ok {
		return fn, args.Error(1)
	}
	return func() {}, args.Error(1)
}

func testBarcode(t *testing.T, value string) kernel.Barcode {
	t.Helper()
	barcode, err := kernel.NewBarcode(value)
	require.NoError(t, err)
	return barcode
}

func testPrice(t *testing.T, value string) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return price
}

func testRecipient() parcel.Recipient {
	return parcel.Recipient{
		Name:        "Amine Ben Salah",
		Phone:       "+216 20 123 456",
		Address:     "14 Rue de Carthage",
		Governorate: "Tunis",
		City:        "Le Bardo",
	}
}

// storedParcel builds a parcel as the repository would return it, sitting in
// the given status and optionally attached to a manifest.
func storedParcel(t *testing.T, barcode kernel.Barcode, status parcel.Status, manifestID *kernel.UUID) *parcel.Parcel {
	t.Helper()
	now := time.Now()
	p, err := parcel.RestoreParcel(
		barcode,
		kernel.NewUUID(),
		status,
		testPrice(t, "45.500"),
		1,
		testRecipient(),
		nil,
		"",
		manifestID,
		now.Add(-time.Hour),
		now,
	)
	require.NoError(t, err)
	return p
}
