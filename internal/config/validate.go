package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is structurally usable. It does not
// require the per-run fields; see ValidateRequest.
func (c *Config) Validate() error {
	if err := c.validateNotification(); err != nil {
		return err
	}
	if err := c.validateEmail(); err != nil {
		return err
	}
	if err := ensurePositiveMap(map[string]int{
		"teams.request_timeout": c.Teams.RequestTimeout,
		"slack.request_timeout": c.Slack.RequestTimeout,
		"email.timeout":         c.Email.Timeout,
	}); err != nil {
		return err
	}
	return nil
}

// ValidateRequest ensures the fields describing the deployment are present.
// Channel settings are never required: incomplete channels are skipped.
func (c *Config) ValidateRequest() error {
	if c.Notification.Environment == "" {
		return errors.New("environment is required (notification.environment, INPUT_ENVIRONMENT or --environment)")
	}
	if c.Notification.Status == "" {
		return errors.New("status is required (notification.status, INPUT_STATUS or --status)")
	}
	if c.Notification.AppNameSource == AppNameFromInput && c.Notification.AppName == "" {
		return errors.New("app-name is required when notification.app_name_source is \"input\"")
	}
	return nil
}

func (c *Config) validateNotification() error {
	switch c.Notification.Type {
	case TypeTeams, TypeEmail, TypeSlack, TypeAll:
	default:
		return fmt.Errorf("notification.type: unsupported value %q (want teams, email, slack or all)", c.Notification.Type)
	}
	switch c.Notification.AppNameSource {
	case AppNameFromInput, AppNameFromRepository:
	default:
		return fmt.Errorf("notification.app_name_source: unsupported value %q (want input or repository)", c.Notification.AppNameSource)
	}
	switch c.Notification.CommitFormat {
	case CommitFull, CommitShort:
	default:
		return fmt.Errorf("notification.commit_format: unsupported value %q (want full or short)", c.Notification.CommitFormat)
	}
	return nil
}

func (c *Config) validateEmail() error {
	if c.Email.SMTPPort < 0 || c.Email.SMTPPort > 65535 {
		return fmt.Errorf("email.smtp_port: %d is out of range", c.Email.SMTPPort)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
