package entity

import "time"

// Recipient types for a ReminderPolicy.
const (
	RecipientUser    = "user"
	RecipientChannel = "channel"
)

// ReminderPolicy holds a recipient's notification preferences. A policy is
// created with defaults on first interaction and only mutated through the
// preference service; the matching core just reads it.
type ReminderPolicy struct {
	ID            int64     `json:"id" db:"id"`
	RecipientID   string    `json:"recipient_id" db:"recipient_id"`     // Slack user or channel ID
	RecipientType string    `json:"recipient_type" db:"recipient_type"` // RecipientUser or RecipientChannel
	ReminderDays  []int     `json:"reminder_days" db:"reminder_days"`   // days-before-deadline thresholds, JSON column
	Subjects      []string  `json:"subjects" db:"subjects"`             // empty means all subjects, JSON column
	Enabled       bool      `json:"notifications_enabled" db:"notifications_enabled"`
	Timezone      string    `json:"timezone" db:"timezone"` // display zone only, never used for matching
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
