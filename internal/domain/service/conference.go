package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/query"
)

type conferenceService struct {
	provider contract.ConferenceProvider
	now      func() time.Time
}

func newConference(provider contract.ConferenceProvider) *conferenceService {
	return &conferenceService{
		provider: provider,
		now:      time.Now,
	}
}

// List returns the snapshot narrowed by subject and year (zero values skip
// the filter) in the given sort order.
func (s *conferenceService) List(ctx context.Context, subject string, year int, mode query.SortMode) ([]entity.Conference, error) {
	confs, err := s.provider.Conferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conferences: %w", err)
	}

	if subject != "" {
		confs = query.FilterBySubject(confs, subject)
	}
	if year != 0 {
		confs = query.FilterByYear(confs, year)
	}
	if !query.ValidSortMode(mode) {
		mode = query.SortByDeadline
	}

	return query.Sort(confs, mode, s.now()), nil
}

func (s *conferenceService) Search(ctx context.Context, q string) ([]entity.Conference, error) {
	confs, err := s.provider.Conferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conferences: %w", err)
	}

	return query.Sort(query.Search(confs, q), query.SortByDeadline, s.now()), nil
}

func (s *conferenceService) Upcoming(ctx context.Context, days int) ([]entity.Reminder, error) {
	confs, err := s.provider.Conferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conferences: %w", err)
	}

	return query.UpcomingWithin(confs, days, s.now()), nil
}
