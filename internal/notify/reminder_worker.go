package notify

import (
	"context"
	"sync"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/service"
	"github.com/gentrackhq/gentrack/internal/store"
)

// ReminderWorker periodically scans every generator and posts a webhook
// reminder for each one whose maintenance figures say service is due.
//
// The scan is stateless: a generator that stays due is reminded again on
// every cycle. Deduplication is the webhook consumer's concern.
type ReminderWorker struct {
	generators store.GeneratorRepository
	sender     Sender
	interval   time.Duration

	now func() time.Time

	done     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

// NewReminderWorker constructs a worker scanning every interval.
func NewReminderWorker(generators store.GeneratorRepository, sender Sender, interval time.Duration, log *logger.Logger) *ReminderWorker {
	return &ReminderWorker{
		generators: generators,
		sender:     sender,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
		logger:     log,
	}
}

// Run scans on a ticker until Stop is called. It blocks and is intended to
// run as a background worker.
func (w *ReminderWorker) Run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("maintenance reminder worker started")

	for {
		select {
		case <-ticker.C:
			w.scan()
		case <-w.done:
			w.logger.Info().Msg("maintenance reminder worker stopped")
			return
		}
	}
}

// Stop requests termination. Idempotent.
func (w *ReminderWorker) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
}

func (w *ReminderWorker) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	generators, err := w.generators.ListAllGenerators(ctx)
	if err != nil {
		w.logger.Err(err).Msg("reminder scan failed")
		return
	}

	now := w.now()
	sent := 0
	for _, g := range generators {
		status := service.MaintenanceStatus(g, now)
		if !status.ServiceDue {
			continue
		}

		if err := w.sender.Send(ctx, FromStatus(status)); err != nil {
			w.logger.Err(err).Int64("generator_id", g.GeneratorID).Msg("reminder delivery failed")
			continue
		}
		sent++
	}

	if sent > 0 {
		w.logger.Info().Int("sent", sent).Msg("maintenance reminders delivered")
	}
}
