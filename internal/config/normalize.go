package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeNotification()
	c.normalizeWebhooks()
	c.normalizeEmail()
	if err := c.normalizeSummary(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeNotification() {
	c.Notification.Type = strings.ToLower(strings.TrimSpace(c.Notification.Type))
	if c.Notification.Type == "" {
		c.Notification.Type = defaultType
	}
	c.Notification.Environment = strings.TrimSpace(c.Notification.Environment)
	c.Notification.Status = strings.TrimSpace(c.Notification.Status)
	c.Notification.AppName = strings.TrimSpace(c.Notification.AppName)
	c.Notification.DeploymentURL = strings.TrimSpace(c.Notification.DeploymentURL)
	c.Notification.AppNameSource = strings.ToLower(strings.TrimSpace(c.Notification.AppNameSource))
	if c.Notification.AppNameSource == "" {
		c.Notification.AppNameSource = defaultAppNameSource
	}
	c.Notification.CommitFormat = strings.ToLower(strings.TrimSpace(c.Notification.CommitFormat))
	if c.Notification.CommitFormat == "" {
		c.Notification.CommitFormat = defaultCommitFormat
	}
}

func (c *Config) normalizeWebhooks() {
	c.Teams.WebhookURL = strings.TrimSpace(c.Teams.WebhookURL)
	if c.Teams.WebhookURL == "" {
		if value, ok := os.LookupEnv("TEAMS_WEBHOOK_URL"); ok {
			c.Teams.WebhookURL = strings.TrimSpace(value)
		}
	}
	if c.Teams.RequestTimeout <= 0 {
		c.Teams.RequestTimeout = defaultWebhookTimeout
	}
	c.Slack.WebhookURL = strings.TrimSpace(c.Slack.WebhookURL)
	if c.Slack.WebhookURL == "" {
		if value, ok := os.LookupEnv("SLACK_WEBHOOK_URL"); ok {
			c.Slack.WebhookURL = strings.TrimSpace(value)
		}
	}
	if c.Slack.RequestTimeout <= 0 {
		c.Slack.RequestTimeout = defaultWebhookTimeout
	}
}

func (c *Config) normalizeEmail() {
	c.Email.To = strings.TrimSpace(c.Email.To)
	c.Email.From = strings.TrimSpace(c.Email.From)
	if c.Email.From == "" {
		c.Email.From = defaultEmailFrom
	}
	c.Email.SMTPServer = strings.TrimSpace(c.Email.SMTPServer)
	c.Email.SMTPUsername = strings.TrimSpace(c.Email.SMTPUsername)
	if c.Email.SMTPPassword == "" {
		if value, ok := os.LookupEnv("SMTP_PASSWORD"); ok {
			c.Email.SMTPPassword = value
		}
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = defaultSMTPPort
	}
	if c.Email.Timeout <= 0 {
		c.Email.Timeout = defaultSMTPTimeout
	}
}

func (c *Config) normalizeSummary() error {
	c.Summary.Path = strings.TrimSpace(c.Summary.Path)
	if c.Summary.Path == "" {
		if value, ok := os.LookupEnv("GITHUB_STEP_SUMMARY"); ok {
			c.Summary.Path = strings.TrimSpace(value)
		}
	}
	if c.Summary.Path == "" {
		return nil
	}
	var err error
	if c.Summary.Path, err = expandPath(c.Summary.Path); err != nil {
		return fmt.Errorf("summary.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
