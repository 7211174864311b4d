package reminder

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/eventra/eventra/internal/adapter"
	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/notification"
	"github.com/eventra/eventra/internal/store"
)

// ReminderLeadDays is how many days before an event the reminder goes out.
const ReminderLeadDays = 3

// Config tunes the reminder job.
type Config struct {
	// WorkerPoolSize bounds concurrent email sends.
	WorkerPoolSize int
}

// Job sends the day's event reminders: every event starting in exactly
// three days, one email per unique ticket holder.
type Job struct {
	config Config
	store  store.Store
	mailer notification.Mailer
	clock  adapter.Clock
}

// NewJob wires the reminder job.
func NewJob(cfg Config, st store.Store, mailer notification.Mailer, clock adapter.Clock) *Job {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 8
	}
	return &Job{
		config: cfg,
		store:  st,
		mailer: mailer,
		clock:  clock,
	}
}

// Summary reports what a run did.
type Summary struct {
	EventsProcessed int   `json:"events_processed"`
	EmailsSent      int64 `json:"emails_sent"`
	EmailsFailed    int64 `json:"emails_failed"`
}

// Run processes one reminder window. Email sends fan out over a worker
// pool; individual failures are counted, not fatal.
func (j *Job) Run(ctx context.Context) (*Summary, error) {
	now := j.clock.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, ReminderLeadDays)
	to := from.AddDate(0, 0, 1)

	events, err := j.store.ListEventsStartingBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	var sent, failed atomic.Int64

	pool := pond.NewPool(
		j.config.WorkerPoolSize,
		pond.WithContext(ctx),
	)

	for _, event := range events {
		holderIDs, err := j.store.ListTicketHolderIDs(ctx, event.ID)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("event_id", event.ID))
			continue
		}

		profiles, err := j.store.GetProfilesByIDs(ctx, holderIDs)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("event_id", event.ID))
			continue
		}

		summary.EventsProcessed++

		for _, profile := range profiles {
			event := event
			profile := profile
			pool.Submit(func() {
				message := notification.EventReminder(
					profile.FullName, event.Title, event.EventDate, event.Location)
				message.To = profile.Email

				if err := j.mailer.Send(ctx, message); err != nil {
					failed.Add(1)
					logger.WarnCtx(ctx, "failed to send reminder",
						zap.String("event_id", event.ID),
						zap.String("recipient", profile.ID),
						zap.Error(err))
					return
				}
				sent.Add(1)
			})
		}
	}

	pool.StopAndWait()

	summary.EmailsSent = sent.Load()
	summary.EmailsFailed = failed.Load()

	logger.InfoCtx(ctx, "reminder run completed",
		zap.Int("events", summary.EventsProcessed),
		zap.Int64("sent", summary.EmailsSent),
		zap.Int64("failed", summary.EmailsFailed))

	return summary, nil
}
