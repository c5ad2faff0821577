package contract

import (
	"context"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/query"
)

// ConferenceService answers read-only queries over the current feed snapshot.
type ConferenceService interface {
	List(ctx context.Context, subject string, year int, mode query.SortMode) ([]entity.Conference, error)
	Search(ctx context.Context, q string) ([]entity.Conference, error)
	Upcoming(ctx context.Context, days int) ([]entity.Reminder, error)
}

// PolicyService owns reminder-policy lifecycle and validation. Mutating
// methods create the policy with defaults on first touch.
type PolicyService interface {
	GetOrCreate(recipientID, recipientType string) (*entity.ReminderPolicy, error)
	SetReminderDays(recipientID, recipientType string, days []int) (*entity.ReminderPolicy, error)
	SetSubjects(recipientID, recipientType string, subjects []string) (*entity.ReminderPolicy, error)
	SetTimezone(recipientID, recipientType, zone string) (*entity.ReminderPolicy, error)
	SetEnabled(recipientID, recipientType string, enabled bool) (*entity.ReminderPolicy, error)
	Delete(recipientID string) error
}

// NotifierService runs one notification cycle over all enabled policies.
type NotifierService interface {
	Run(ctx context.Context) (NotifyReport, error)
}

// NotifyReport aggregates the outcome of a notification cycle. Individual
// recipient failures are counted, never fatal.
type NotifyReport struct {
	Recipients int // enabled policies considered
	Delivered  int // messages successfully sent
	Empty      int // recipients with nothing due
	Failed     int // delivery failures
}
