package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentResolutionJob manages the scheduled resolution of queued shipments.
// Runs every second to poll shipping identifiers and settle each shipment
// against its delivery deadline.
type ShipmentResolutionJob struct {
	handler commands.ProcessShipmentBatchCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentResolutionJob creates a new job for resolving shipments.
// Uses ProcessShipmentBatchCommandHandler to process one batch per tick.
func NewShipmentResolutionJob(
	handler commands.ProcessShipmentBatchCommandHandler, logger *slog.Logger,
) *ShipmentResolutionJob {
	return &ShipmentResolutionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_resolution_job"),
	}
}

// Start begins the shipment resolution job to run every second.
func (j *ShipmentResolutionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewProcessShipmentBatchCommand(commands.DefaultBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Shipment resolution job misconfigured", "error", cmdErr)
			return
		}

		resolutions, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Shipment resolution job failed", "error", handleErr)
			return
		}

		for _, resolution := range resolutions {
			if resolution.Err != nil {
				j.logger.ErrorContext(ctx, "Shipment resolution failed",
					"shipping_id", resolution.ShippingID.String(),
					"error", resolution.Err,
				)
				continue
			}

			j.logger.InfoContext(ctx, "Shipment resolved",
				"shipping_id", resolution.ShippingID.String(),
				"status", resolution.Status.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment resolution job started (running every second)")
	return nil
}

// Stop stops the shipment resolution job.
func (j *ShipmentResolutionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment resolution job stopped")
}
