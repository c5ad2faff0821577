package contract

import "context"

// Dispatcher delivers one rendered reminder message to one recipient.
// Delivery is fallible per recipient; the notifier isolates failures so one
// bad recipient never blocks the rest of a batch.
type Dispatcher interface {
	Deliver(ctx context.Context, recipientID, text string) error
}
