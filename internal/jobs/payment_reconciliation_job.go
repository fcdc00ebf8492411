package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcelflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentReconciliationJob manages the scheduled payment sweep.
// Runs every minute to create missing payments for delivered parcels.
type PaymentReconciliationJob struct {
	handler commands.ReconcilePaymentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReconciliationJob creates a new job for reconciling payments.
// Uses ReconcilePaymentsCommandHandler to process the sweep every minute.
func NewPaymentReconciliationJob(handler commands.ReconcilePaymentsCommandHandler, logger *slog.Logger) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_reconciliation_job"),
	}
}

// Start begins the payment reconciliation job to run every minute.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcilePaymentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPaymentsToReconcile) {
				j.logger.ErrorContext(ctx, "Payment reconciliation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started (running every minute)")
	return nil
}

// Stop stops the payment reconciliation job.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}
