package contract

import (
	"context"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Policy() PolicyRepo
}

// PolicyRepo defines the contract for the reminder-policy repository.
// Lookups are keyed by recipient ID only; missing rows come back as
// (nil, nil), not an error.
type PolicyRepo interface {
	Create(policy *entity.ReminderPolicy) error
	GetByRecipientID(recipientID string) (*entity.ReminderPolicy, error)
	Update(policy *entity.ReminderPolicy) error
	Delete(recipientID string) error
	ListEnabled() ([]*entity.ReminderPolicy, error)
}
