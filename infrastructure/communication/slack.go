package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack mirrors admin notifications to a channel. Optional; ConnectSlack
// returns nil when the bot token or channel is not configured.
type Slack struct {
	client    *slack.Client
	channelID string
}

func ConnectSlack(channelID string) *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" || channelID == "" {
		return nil
	}
	return NewSlack(token, channelID)
}

func NewSlack(token string, channelID string) *Slack {
	return &Slack{client: slack.New(token), channelID: channelID}
}

func (s *Slack) Notify(message string) error {
	_, _, err := s.client.PostMessage(
		s.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}
