package notifications

import "github.com/slack-go/slack"

// Preview holds every payload a run would produce, without delivering any.
type Preview struct {
	Channels []string              `json:"channels"`
	Message  Message               `json:"message"`
	Teams    TeamsCard             `json:"teams"`
	Email    Email                 `json:"email"`
	SMTP     SMTPSession           `json:"smtp"`
	Slack    *slack.WebhookMessage `json:"slack"`
}

// Preview builds the payloads for req.
func (d *Dispatcher) Preview(req Request) (Preview, error) {
	msg, err := d.Prepare(req)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		Channels: d.Channels(),
		Message:  msg,
		Teams:    BuildTeamsCard(msg),
		Email:    BuildEmail(msg),
		SMTP:     d.session,
		Slack:    BuildSlackMessage(msg),
	}, nil
}
