package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Inputs mirrors the action inputs. The runner exports each one as
// INPUT_<NAME> with the name upper-cased and dashes kept, and sets every
// declared input even when the workflow leaves it blank, so empty values mean
// "not provided". CLI flags populate the same struct.
type Inputs struct {
	Environment      string `env:"ENVIRONMENT"`
	Status           string `env:"STATUS"`
	AppName          string `env:"APP-NAME"`
	AppNameSource    string `env:"APP-NAME-SOURCE"`
	CommitFormat     string `env:"COMMIT-FORMAT"`
	DeploymentURL    string `env:"DEPLOYMENT-URL"`
	AdditionalInfo   string `env:"ADDITIONAL-INFO"`
	NotificationType string `env:"NOTIFICATION-TYPE"`
	WebhookURL       string `env:"WEBHOOK-URL"`
	SlackWebhookURL  string `env:"SLACK-WEBHOOK-URL"`
	EmailTo          string `env:"EMAIL-TO"`
	EmailFrom        string `env:"EMAIL-FROM"`
	SMTPServer       string `env:"SMTP-SERVER"`
	SMTPPort         string `env:"SMTP-PORT"`
	SMTPUsername     string `env:"SMTP-USERNAME"`
	SMTPPassword     string `env:"SMTP-PASSWORD"`
}

// ReadInputs parses INPUT_* variables from environment, or from the process
// environment when environment is nil.
func ReadInputs(environment map[string]string) (Inputs, error) {
	var in Inputs
	opts := env.Options{Prefix: "INPUT_", Environment: environment}
	if err := env.ParseWithOptions(&in, opts); err != nil {
		return Inputs{}, fmt.Errorf("read action inputs: %w", err)
	}
	return in, nil
}

// Apply overlays every non-empty input onto the configuration. An smtp-port
// that is not a number selects the default port.
func (c *Config) Apply(in Inputs) {
	set := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}

	set(&c.Notification.Environment, in.Environment)
	set(&c.Notification.Status, in.Status)
	set(&c.Notification.AppName, in.AppName)
	set(&c.Notification.AppNameSource, in.AppNameSource)
	set(&c.Notification.CommitFormat, in.CommitFormat)
	set(&c.Notification.DeploymentURL, in.DeploymentURL)
	set(&c.Notification.Type, in.NotificationType)
	set(&c.Teams.WebhookURL, in.WebhookURL)
	set(&c.Slack.WebhookURL, in.SlackWebhookURL)
	set(&c.Email.To, in.EmailTo)
	set(&c.Email.From, in.EmailFrom)
	set(&c.Email.SMTPServer, in.SMTPServer)
	set(&c.Email.SMTPUsername, in.SMTPUsername)
	// Passwords may legitimately carry surrounding whitespace.
	if in.SMTPPassword != "" {
		c.Email.SMTPPassword = in.SMTPPassword
	}
	// Free text keeps its line breaks.
	if strings.TrimSpace(in.AdditionalInfo) != "" {
		c.Notification.AdditionalInfo = in.AdditionalInfo
	}

	if port := strings.TrimSpace(in.SMTPPort); port != "" {
		value, err := strconv.Atoi(port)
		if err != nil {
			value = defaultSMTPPort
		}
		c.Email.SMTPPort = value
	}
}
