package testsupport

import (
	"path/filepath"
	"testing"

	"deploynotify/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config describing a successful production deployment
// of "orders-api" with every channel unconfigured. The step summary is
// pointed at a per-test temp file.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Notification.Environment = "production"
	cfgVal.Notification.Status = "success"
	cfgVal.Notification.AppName = "orders-api"
	cfgVal.Summary.Path = filepath.Join(base, "step_summary.md")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithType sets notification.type.
func WithType(kind string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notification.Type = kind
	}
}

// WithStatus sets the raw deployment status.
func WithStatus(value string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notification.Status = value
	}
}

// WithDeploymentURL sets the optional deployment URL.
func WithDeploymentURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notification.DeploymentURL = url
	}
}

// WithTeamsWebhook enables the Teams channel.
func WithTeamsWebhook(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Teams.WebhookURL = url
	}
}

// WithSlackWebhook enables the Slack channel.
func WithSlackWebhook(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Slack.WebhookURL = url
	}
}

// WithEmail enables the email channel.
func WithEmail(to, server string, port int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Email.To = to
		b.cfg.Email.SMTPServer = server
		b.cfg.Email.SMTPPort = port
	}
}
