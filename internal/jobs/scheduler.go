package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"miniblog/api/internal/store"
)

// Scheduler logs the moderation-queue depth on a fixed cadence so an
// unattended queue shows up in the logs. The queue is recomputed from the
// canonical comment collection on every tick, never cached.
type Scheduler struct {
	cron     *cron.Cron
	comments *store.CommentStore
	log      zerolog.Logger
}

func NewScheduler(comments *store.CommentStore, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:     c,
		comments: comments,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 * * * *", s.reportQueueDepth); err != nil { // hourly
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop; the returned context is done once any running
// job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) reportQueueDepth() {
	pending := s.comments.PendingReports()
	event := s.log.Info()
	if len(pending) > 0 {
		event = s.log.Warn()
	}
	event.Int("pending_reports", len(pending)).Msg("moderation queue depth")
}
