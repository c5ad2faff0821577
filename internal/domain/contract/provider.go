package contract

import (
	"context"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

// ConferenceProvider hands out the current conference snapshot. The snapshot
// is best-effort recent: implementations cache behind a TTL and may serve a
// stale-but-valid copy when the upstream feed is unreachable.
type ConferenceProvider interface {
	Conferences(ctx context.Context) ([]entity.Conference, error)
}
