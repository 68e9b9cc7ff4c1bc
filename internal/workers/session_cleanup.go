package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/lexsight/internal/logger"
)

type sessionCleanupWorker struct {
	purger   SessionPurger
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionCleanupWorker returns a worker that deletes expired sessions once
// at start and then every interval. A non-positive interval disables it and
// yields nil.
func NewSessionCleanupWorker(purger SessionPurger, interval time.Duration, logger *logger.Logger) Worker {
	if purger == nil || interval <= 0 {
		return nil
	}
	return &sessionCleanupWorker{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (w *sessionCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("session cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.sweep(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session cleanup worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *sessionCleanupWorker) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	removed, err := w.purger.PurgeExpiredSessions(w.logger.WithContext(ctx))
	if err != nil {
		w.logger.Err(err).Msg("error purging expired sessions")
		return
	}
	if removed > 0 {
		w.logger.Info().Int64("removed", removed).Msg("expired sessions purged")
	}
}
