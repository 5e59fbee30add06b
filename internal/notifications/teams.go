package notifications

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"deploynotify/internal/config"
	"deploynotify/internal/logging"
)

// TeamsCard is a legacy Office 365 connector MessageCard.
type TeamsCard struct {
	Type            string         `json:"@type"`
	Context         string         `json:"@context"`
	Summary         string         `json:"summary"`
	ThemeColor      string         `json:"themeColor"`
	Title           string         `json:"title"`
	Sections        []TeamsSection `json:"sections"`
	PotentialAction []TeamsAction  `json:"potentialAction"`
}

type TeamsSection struct {
	ActivityTitle string      `json:"activityTitle"`
	Facts         []TeamsFact `json:"facts"`
	Text          string      `json:"text"`
}

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type TeamsAction struct {
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Targets []TeamsTarget `json:"targets"`
}

type TeamsTarget struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// BuildTeamsCard renders msg as a MessageCard.
func BuildTeamsCard(msg Message) TeamsCard {
	facts := msg.Facts()
	teamsFacts := make([]TeamsFact, 0, len(facts))
	for _, f := range facts {
		teamsFacts = append(teamsFacts, TeamsFact{Name: f.Label, Value: f.Value})
	}
	return TeamsCard{
		Type:       "MessageCard",
		Context:    "https://schema.org/extensions",
		Summary:    "Deployment " + msg.Status.Text,
		ThemeColor: msg.Status.Color,
		Title:      msg.Title(),
		Sections: []TeamsSection{{
			ActivityTitle: "Deployment to " + msg.Environment,
			Facts:         teamsFacts,
			Text:          msg.AdditionalInfo,
		}},
		PotentialAction: []TeamsAction{{
			Type:    "OpenUri",
			Name:    "View Workflow",
			Targets: []TeamsTarget{{OS: "default", URI: msg.RunURL}},
		}},
	}
}

// TeamsSender posts MessageCards to an incoming webhook.
type TeamsSender struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

// NewTeamsSender builds a sender for cfg. A nil client gets one with the
// configured request timeout.
func NewTeamsSender(cfg config.Teams, client *http.Client, logger *slog.Logger) *TeamsSender {
	if client == nil {
		client = newHTTPClient(cfg.RequestTimeout)
	}
	return &TeamsSender{
		webhookURL: strings.TrimSpace(cfg.WebhookURL),
		client:     client,
		logger:     logging.NewComponentLogger(logger, "teams"),
	}
}

func (s *TeamsSender) Channel() string { return config.ChannelTeams }

// Send posts the card once. A missing webhook URL skips the channel.
func (s *TeamsSender) Send(ctx context.Context, msg Message) Result {
	if s.webhookURL == "" {
		return Skipped(config.ChannelTeams, "No webhook URL provided for Teams notification")
	}
	s.logger.Debug("posting message card", logging.String("title", msg.Title()))
	if err := postJSON(ctx, s.client, s.webhookURL, BuildTeamsCard(msg)); err != nil {
		return Failed(config.ChannelTeams, Wrap(ErrDelivery, config.ChannelTeams, "post card", "Teams webhook failed", err))
	}
	return Sent(config.ChannelTeams)
}
