package jobs

import (
	"context"
	"errors"
	"log/slog"

	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// probeCustomerID is a reserved identifier used only for availability checks.
// A not-found answer for it still proves the downstream is reachable.
const probeCustomerID = "availability-probe"

// CustomerServiceProbeJob periodically checks whether the customer validation
// dependency is reachable. Successful probes feed the gateway's circuit
// breaker, letting it close again after an outage even when no order creation
// traffic is flowing.
type CustomerServiceProbeJob struct {
	gateway ports.CustomerValidationGateway
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCustomerServiceProbeJob creates a probe job running every 30 seconds.
func NewCustomerServiceProbeJob(gateway ports.CustomerValidationGateway, logger *slog.Logger) *CustomerServiceProbeJob {
	return &CustomerServiceProbeJob{
		gateway: gateway,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "customer_service_probe_job"),
	}
}

// Start begins the probe schedule.
func (j *CustomerServiceProbeJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		_, probeErr := j.gateway.CustomerExists(ctx, probeCustomerID)
		if probeErr != nil {
			if errors.Is(probeErr, ports.ErrCustomerServiceUnavailable) {
				j.logger.WarnContext(ctx, "Customer service unavailable", "error", probeErr)
			} else {
				j.logger.ErrorContext(ctx, "Customer service probe failed", "error", probeErr)
			}
			return
		}

		j.logger.DebugContext(ctx, "Customer service reachable")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Customer service probe job started (running every 30 seconds)")
	return nil
}

// Stop stops the probe schedule.
func (j *CustomerServiceProbeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Customer service probe job stopped")
}
