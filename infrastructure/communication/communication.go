package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack posts operational notices (scan activity, delivery failures) to the
// security operations channels. Optional: a nil *Slack is a no-op.
type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// ConnectSlack returns nil when no bot token is configured.
func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil
	}
	infoCh := os.Getenv("SLACK_INFO_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewSlack(token, SlackOption{InfoChannelID: infoCh, ErrorChannelID: errorCh})
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	if s == nil || s.options.InfoChannelID == "" {
		return nil
	}
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	if s == nil || s.options.ErrorChannelID == "" {
		return nil
	}
	return s.postMessage(s.options.ErrorChannelID, message)
}
