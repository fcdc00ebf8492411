package cmd

import (
	"time"

	"parcelflow/internal/adapters/out/postgres"
	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/pkg/keylock"

	"gorm.io/gorm"
)

// lockTimeout bounds how long a command handler waits for a parcel's
// per-barcode lock before giving up with keylock.ErrLockTimeout.
const lockTimeout = 5 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locker     *keylock.KeyLock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locker:     keylock.NewKeyLock(lockTimeout),
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) manifestUoWFactory() commands.ManifestUoWFactory {
	return FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	return commands.NewApplyTransitionCommandHandler(c.parcelUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateAbandonParcelCommandHandler() commands.AbandonParcelCommandHandler {
	return commands.NewAbandonParcelCommandHandler(c.parcelUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	return commands.NewCreateManifestCommandHandler(c.manifestUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateRemoveManifestParcelCommandHandler() commands.RemoveManifestParcelCommandHandler {
	return commands.NewRemoveManifestParcelCommandHandler(c.manifestUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateDeleteManifestCommandHandler() commands.DeleteManifestCommandHandler {
	return commands.NewDeleteManifestCommandHandler(c.manifestUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.parcelUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateRefusePaymentCommandHandler() commands.RefusePaymentCommandHandler {
	return commands.NewRefusePaymentCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateReconcilePaymentsCommandHandler() commands.ReconcilePaymentsCommandHandler {
	return commands.NewReconcilePaymentsCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOutstandingPaymentsQueryHandler() queries.GetOutstandingPaymentsQueryHandler {
	return queries.NewGetOutstandingPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkflowStatsQueryHandler() queries.GetWorkflowStatsQueryHandler {
	return queries.NewGetWorkflowStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManifestTotalQueryHandler() queries.GetManifestTotalQueryHandler {
	return queries.NewGetManifestTotalQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}
