package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/notify"
)

// NotifierOptions bound the delivery fan-out.
type NotifierOptions struct {
	// Concurrency caps simultaneous deliveries.
	Concurrency int
	// RatePerSec throttles outbound messages; Slack tolerates roughly one
	// message per second per channel.
	RatePerSec float64
	// DeliverTimeout bounds a single delivery call so one slow recipient
	// cannot hang the whole batch.
	DeliverTimeout time.Duration
}

func (o *NotifierOptions) withDefaults() NotifierOptions {
	out := *o
	if out.Concurrency <= 0 {
		out.Concurrency = 4
	}
	if out.RatePerSec <= 0 {
		out.RatePerSec = 1
	}
	if out.DeliverTimeout <= 0 {
		out.DeliverTimeout = 10 * time.Second
	}
	return out
}

type notifierService struct {
	dm         contract.DataManager
	provider   contract.ConferenceProvider
	dispatcher contract.Dispatcher
	opts       NotifierOptions
	limiter    *rate.Limiter
	now        func() time.Time
}

func newNotifier(dm contract.DataManager, provider contract.ConferenceProvider, dispatcher contract.Dispatcher, opts NotifierOptions) *notifierService {
	opts = opts.withDefaults()
	return &notifierService{
		dm:         dm,
		provider:   provider,
		dispatcher: dispatcher,
		opts:       opts,
		limiter:    rate.NewLimiter(rate.Limit(opts.RatePerSec), 1),
		now:        time.Now,
	}
}

// Run executes one notification cycle: build each enabled recipient's batch
// and deliver it. Recipient failures are isolated and counted; a provider
// outage degrades to an empty cycle rather than an error surfacing to the
// trigger.
func (s *notifierService) Run(ctx context.Context) (contract.NotifyReport, error) {
	var report contract.NotifyReport

	confs, err := s.provider.Conferences(ctx)
	if err != nil {
		log.Error().Err(err).Msg("conference feed unavailable, skipping notification cycle")
		return report, nil
	}
	if len(confs) == 0 {
		log.Warn().Msg("no conferences loaded, nothing to notify")
		return report, nil
	}

	policies, err := s.dm.Policy().ListEnabled()
	if err != nil {
		return report, fmt.Errorf("failed to list enabled policies: %w", err)
	}
	report.Recipients = len(policies)

	now := s.now()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.opts.Concurrency)
	)

	for _, policy := range policies {
		batch := notify.BuildBatch(confs, policy, now)
		if len(batch) == 0 {
			mu.Lock()
			report.Empty++
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(policy *entity.ReminderPolicy, batch []entity.Reminder) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				report.Failed++
				mu.Unlock()
				return
			}

			err := s.deliver(ctx, policy, batch)

			mu.Lock()
			if err != nil {
				report.Failed++
			} else {
				report.Delivered++
			}
			mu.Unlock()

			if err != nil {
				log.Error().Err(err).Str("recipient", policy.RecipientID).Msg("reminder delivery failed")
			}
		}(policy, batch)
	}

	wg.Wait()

	log.Info().
		Int("recipients", report.Recipients).
		Int("delivered", report.Delivered).
		Int("empty", report.Empty).
		Int("failed", report.Failed).
		Msg("notification cycle finished")

	return report, nil
}

func (s *notifierService) deliver(ctx context.Context, policy *entity.ReminderPolicy, batch []entity.Reminder) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.DeliverTimeout)
	defer cancel()

	text := renderBatch(policy, batch)
	return s.dispatcher.Deliver(ctx, policy.RecipientID, text)
}

// renderBatch formats a batch as a Slack mrkdwn message. Deadlines show in
// their own zone plus the recipient's display zone when it differs.
func renderBatch(policy *entity.ReminderPolicy, batch []entity.Reminder) string {
	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		loc = time.UTC
	}

	var b strings.Builder
	b.WriteString(":alarm_clock: *Upcoming conference deadlines*\n")

	for _, r := range batch {
		d := r.Deadline.Localized(loc)

		b.WriteString(fmt.Sprintf("• *%s %d* - %s in *%s*: %s",
			r.Conference.Title,
			r.Conference.Year,
			d.Label,
			formatDaysLeft(r.DaysLeft),
			d.At.Format("2006-01-02 15:04 MST"),
		))
		if d.Local.Location().String() != d.At.Location().String() {
			b.WriteString(fmt.Sprintf(" (%s your time)", d.Local.Format("2006-01-02 15:04")))
		}
		if r.Conference.Link != "" {
			b.WriteString(fmt.Sprintf(" <%s|link>", r.Conference.Link))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatDaysLeft(days int) string {
	switch {
	case days <= 0:
		return "less than a day"
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
