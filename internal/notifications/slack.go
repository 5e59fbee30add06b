package notifications

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/slack-go/slack"

	"deploynotify/internal/config"
	"deploynotify/internal/logging"
)

// BuildSlackMessage renders msg as an incoming-webhook message with a single
// colored attachment.
func BuildSlackMessage(msg Message) *slack.WebhookMessage {
	facts := msg.Facts()
	fields := make([]slack.AttachmentField, 0, len(facts))
	for _, f := range facts {
		fields = append(fields, slack.AttachmentField{
			Title: strings.TrimSuffix(f.Label, ":"),
			Value: f.Value,
			Short: f.Label != "Commit:" && f.Label != "URL:",
		})
	}
	return &slack.WebhookMessage{
		Text: "Deployment to " + msg.Environment,
		Attachments: []slack.Attachment{{
			Color:     msg.Status.HexColor(),
			Fallback:  msg.Title(),
			Title:     msg.Title(),
			TitleLink: msg.RunURL,
			Text:      msg.AdditionalInfo,
			Fields:    fields,
			Footer:    "View Workflow Run",
		}},
	}
}

// SlackSender posts to a Slack incoming webhook.
type SlackSender struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

func NewSlackSender(cfg config.Slack, client *http.Client, logger *slog.Logger) *SlackSender {
	if client == nil {
		client = newHTTPClient(cfg.RequestTimeout)
	}
	return &SlackSender{
		webhookURL: strings.TrimSpace(cfg.WebhookURL),
		client:     client,
		logger:     logging.NewComponentLogger(logger, "slack"),
	}
}

func (s *SlackSender) Channel() string { return config.ChannelSlack }

func (s *SlackSender) Send(ctx context.Context, msg Message) Result {
	if s.webhookURL == "" {
		return Skipped(config.ChannelSlack, "No webhook URL provided for Slack notification")
	}
	s.logger.Debug("posting webhook message", logging.String("title", msg.Title()))
	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.client, BuildSlackMessage(msg)); err != nil {
		return Failed(config.ChannelSlack, Wrap(ErrDelivery, config.ChannelSlack, "post message", "Slack webhook failed", err))
	}
	return Sent(config.ChannelSlack)
}
