package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelflow/internal/adapters/out/postgres/parcelrepo"
	"parcelflow/internal/adapters/out/postgres/paymentrepo"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/payment"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *parcelrepo.GormParcelRepository
	paymentRepo *paymentrepo.GormPaymentRepository
	tracker     *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, payments").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
	suite.paymentRepo = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_And_GetByBarcode() {
	ctx := context.Background()
	p := suite.newParcel("TN-2024-200001")

	err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByBarcode(ctx, p.Barcode())
	suite.Require().NoError(err)
	suite.True(retrieved.Barcode().IsEqual(p.Barcode()))
	suite.True(retrieved.ClientID().IsEqual(p.ClientID()))
	suite.Equal(parcel.StatusPending, retrieved.Status())
	suite.True(retrieved.Price().IsEqual(p.Price()))
	suite.Equal(p.ArticleCount(), retrieved.ArticleCount())
	suite.Equal(p.Recipient(), retrieved.Recipient())
	suite.Nil(retrieved.Exchange())
	suite.Nil(retrieved.ManifestID())

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.Barcode().String(), p)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_WithExchange_RoundTrips() {
	ctx := context.Background()
	p := suite.newParcel("TN-2024-200002")

	exchangeBarcode, err := kernel.NewBarcode("TN-2024-200002-X")
	suite.Require().NoError(err)
	err = p.SetExchange(parcel.Exchange{Barcode: exchangeBarcode, ArticleCount: 2})
	suite.Require().NoError(err)
	p.SetNote("handle with care")

	suite.Require().NoError(suite.repository.Add(ctx, p))

	retrieved, err := suite.repository.GetByBarcode(ctx, p.Barcode())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Exchange())
	suite.True(retrieved.Exchange().Barcode.IsEqual(exchangeBarcode))
	suite.Equal(2, retrieved.Exchange().ArticleCount)
	suite.Equal("handle with care", retrieved.Note())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndManifest() {
	ctx := context.Background()
	p := suite.newParcel("TN-2024-200003")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.advance(p, parcel.StatusReadyForPickup, parcel.StatusPickedUp, parcel.StatusAtWarehouse)

	manifestID := kernel.NewUUID()
	suite.Require().NoError(p.AttachToManifest(manifestID))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	retrieved, err := suite.repository.GetByBarcode(ctx, p.Barcode())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusAtWarehouse, retrieved.Status())
	suite.Require().NotNil(retrieved.ManifestID())
	suite.True(retrieved.ManifestID().IsEqual(manifestID))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_DetachClearsManifest() {
	ctx := context.Background()
	p := suite.newParcel("TN-2024-200004")
	suite.advance(p, parcel.StatusReadyForPickup, parcel.StatusPickedUp, parcel.StatusAtWarehouse)
	suite.Require().NoError(p.AttachToManifest(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, p))

	p.DetachFromManifest()
	suite.Require().NoError(suite.repository.Update(ctx, p))

	retrieved, err := suite.repository.GetByBarcode(ctx, p.Barcode())
	suite.Require().NoError(err)
	suite.Nil(retrieved.ManifestID())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	p := suite.newParcel("TN-2024-200005")

	err := suite.repository.Update(ctx, p)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByBarcode_NotFound() {
	ctx := context.Background()
	barcode, err := kernel.NewBarcode("TN-2024-299999")
	suite.Require().NoError(err)

	_, err = suite.repository.GetByBarcode(ctx, barcode)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByBarcodes_PreservesRequestOrder() {
	ctx := context.Background()
	first := suite.newParcel("TN-2024-200010")
	second := suite.newParcel("TN-2024-200011")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	parcels, err := suite.repository.GetAllByBarcodes(ctx, []kernel.Barcode{second.Barcode(), first.Barcode()})
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 2)
	suite.True(parcels[0].Barcode().IsEqual(second.Barcode()))
	suite.True(parcels[1].Barcode().IsEqual(first.Barcode()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByBarcodes_MissingBarcodeFailsWhole() {
	ctx := context.Background()
	existing := suite.newParcel("TN-2024-200012")
	suite.Require().NoError(suite.repository.Add(ctx, existing))

	missing, err := kernel.NewBarcode("TN-2024-299998")
	suite.Require().NoError(err)

	_, err = suite.repository.GetAllByBarcodes(ctx, []kernel.Barcode{existing.Barcode(), missing})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllDeliveredWithoutPayment() {
	ctx := context.Background()

	delivered := suite.newParcel("TN-2024-200020")
	suite.advance(delivered,
		parcel.StatusReadyForPickup, parcel.StatusPickedUp, parcel.StatusAtWarehouse,
		parcel.StatusOutForDelivery, parcel.StatusDelivered)
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	paid := suite.newParcel("TN-2024-200021")
	suite.advance(paid,
		parcel.StatusReadyForPickup, parcel.StatusPickedUp, parcel.StatusAtWarehouse,
		parcel.StatusOutForDelivery, parcel.StatusDelivered)
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	pay, err := payment.NewPayment(kernel.NewUUID(), paid.Barcode(), paid.Price(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.paymentRepo.Add(ctx, pay))

	pending := suite.newParcel("TN-2024-200022")
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	missing, err := suite.repository.GetAllDeliveredWithoutPayment(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(missing, 1)
	suite.True(missing[0].Barcode().IsEqual(delivered.Barcode()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(barcode string) *parcel.Parcel {
	b, err := kernel.NewBarcode(barcode)
	suite.Require().NoError(err)

	price, err := kernel.NewMoneyFromString("45.500")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(b, kernel.NewUUID(), price, 1, parcel.Recipient{
		Name:        "Amine Ben Salah",
		Phone:       "+216 20 123 456",
		Address:     "14 Rue de Carthage",
		Governorate: "Tunis",
		City:        "Le Bardo",
	}, time.Now())
	suite.Require().NoError(err)
	return p
}

// advance walks the parcel through the given statuses in order.
func (suite *ParcelRepositoryIntegrationTestSuite) advance(p *parcel.Parcel, statuses ...parcel.Status) {
	for _, status := range statuses {
		_, err := p.TransitionTo(status, "test", "", time.Now())
		suite.Require().NoError(err)
	}
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
