// Package dispatch adapts the Slack Web API to the Dispatcher contract used
// by the notifier.
package dispatch

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// messagePoster is the part of *slack.Client the dispatcher needs; keeping
// it narrow allows swapping the client in tests.
type messagePoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type SlackDispatcher struct {
	client messagePoster
}

func NewSlack(client *slack.Client) *SlackDispatcher {
	return &SlackDispatcher{client: client}
}

// Deliver posts a mrkdwn message to a Slack user or channel ID. Posting to a
// user ID opens the bot DM conversation implicitly.
func (d *SlackDispatcher) Deliver(ctx context.Context, recipientID, text string) error {
	_, _, err := d.client.PostMessageContext(ctx, recipientID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", recipientID, err)
	}
	return nil
}
