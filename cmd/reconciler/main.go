package main

import (
	"context"
	"orderping/internal/app/deps"
	"orderping/internal/app/services"
	"orderping/internal/core/domain/logging"
	reconcilereminders "orderping/internal/core/services/reconcile_reminders"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.ReconcilePeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic reminder reconciler.",
		logging.Entry("periodMinutes", (deps.Config.ReconcilePeriod).Minutes()),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic reminder reconciler.")
			break loop
		case <-ticker.C:
			log.Info(context.Background(), "Launching reminder reconciliation service.")
			result, err := services.ReconcileReminders.Run(context.Background(), reconcilereminders.Input{})
			if err != nil {
				log.Error(context.Background(), "Reconciliation service returned an error.", logging.Entry("err", err))
				continue
			}
			log.Info(
				context.Background(),
				"Reconciliation tick finished.",
				logging.Entry("processedCount", result.ProcessedCount),
			)
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
