package jobs

import (
	"context"
	"errors"
	"log/slog"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRelayJob drains the notification outbox on a schedule.
// Runs every second to keep the observer feed close to real time.
type NotificationRelayJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates a job that relays pending notifications.
// Uses DispatchNotificationsCommandHandler to publish one batch per tick.
func NewNotificationRelayJob(handler commands.DispatchNotificationsCommandHandler, logger *slog.Logger) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins the notification relay job to run every second.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchNotificationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty outbox is the normal idle state, not a failure
			if !errors.Is(err, commands.ErrNoPendingNotifications) {
				j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every second)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
