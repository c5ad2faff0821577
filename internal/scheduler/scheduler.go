// Package scheduler triggers the daily notification cycle on a cron
// schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
)

// cycleTimeout bounds one refresh-and-notify pass.
const cycleTimeout = 5 * time.Minute

// FeedRefresher forces a feed re-fetch ahead of a notification pass.
type FeedRefresher interface {
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	cron     *cron.Cron
	notifier contract.NotifierService
	feed     FeedRefresher
	spec     string
}

// New wires the notification cycle to a standard 5-field cron spec.
func New(notifier contract.NotifierService, feed FeedRefresher, spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		notifier: notifier,
		feed:     feed,
		spec:     spec,
	}

	if _, err := s.cron.AddFunc(spec, s.cycle); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	log.Info().Str("spec", s.spec).Msg("notification scheduler started")
	s.cron.Start()
}

// Stop waits for an in-flight cycle to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("notification scheduler stopped")
}

func (s *Scheduler) cycle() {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()
	s.RunCycle(ctx)
}

// RunCycle refreshes the feed and delivers due reminders. Exported so a
// cycle can also be triggered outside the cron schedule.
func (s *Scheduler) RunCycle(ctx context.Context) {
	if err := s.feed.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("feed refresh failed, notifying from last snapshot")
	}

	report, err := s.notifier.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("notification cycle failed")
		return
	}

	log.Info().
		Int("recipients", report.Recipients).
		Int("delivered", report.Delivered).
		Int("empty", report.Empty).
		Int("failed", report.Failed).
		Msg("notification cycle completed")
}
