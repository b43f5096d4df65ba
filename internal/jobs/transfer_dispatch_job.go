package jobs

import (
	"context"
	"errors"
	"log/slog"

	"laundryops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TransferDispatchJob manages the scheduled dispatch of inter-branch transfer
// runs. Runs every minute to batch pending-routing orders and claim drivers.
type TransferDispatchJob struct {
	handler commands.DispatchTransfersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTransferDispatchJob creates a new job for dispatching transfers.
// Uses DispatchTransfersCommandHandler to process the dispatch sweep every minute.
func NewTransferDispatchJob(handler commands.DispatchTransfersCommandHandler, logger *slog.Logger) *TransferDispatchJob {
	return &TransferDispatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "transfer_dispatch_job"),
	}
}

// Start begins the transfer dispatch job to run every minute.
func (j *TransferDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchTransfersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal idle state, not a failure
			if !errors.Is(err, commands.ErrNoPendingTransfers) {
				j.logger.ErrorContext(ctx, "Transfer dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transfer dispatch job started (running every minute)")
	return nil
}

// Stop stops the transfer dispatch job.
func (j *TransferDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transfer dispatch job stopped")
}
