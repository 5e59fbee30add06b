package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"deploynotify/internal/config"
	"deploynotify/internal/logging"
	"deploynotify/internal/notifications"
	"deploynotify/internal/runcontext"
)

type commandContext struct {
	configFlag *string
	inputs     *config.Inputs

	provider        runcontext.Provider
	dispatcherOpts  []notifications.Option
	configOnce      sync.Once
	config          *config.Config
	configPath      string
	configFileFound bool
	configErr       error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{
		configFlag: new(string),
		inputs:     &config.Inputs{},
		provider:   runcontext.EnvProvider{},
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path, *c.inputs)
		if err != nil {
			c.configErr = fmt.Errorf("%w: %w", notifications.ErrConfiguration, err)
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configFileFound = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the logger once, writing to the command's stderr.
func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, errWriter(cmd))
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) newDispatcher(cmd *cobra.Command) (*config.Config, *notifications.Dispatcher, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.ValidateRequest(); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", notifications.ErrConfiguration, err)
	}
	logger, err := c.ensureLogger(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	dispatcher, err := notifications.NewDispatcher(cfg, c.provider, logger, c.dispatcherOpts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, dispatcher, logger, nil
}

func errWriter(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// bindInputFlags registers one flag per action input. Flags left unset keep
// their empty value and therefore do not override lower layers.
func bindInputFlags(cmd *cobra.Command, in *config.Inputs) {
	flags := cmd.Flags()
	flags.StringVar(&in.Environment, "environment", "", "Deployment environment (required)")
	flags.StringVar(&in.Status, "status", "", "Deployment status; only \"success\" counts as success (required)")
	flags.StringVar(&in.AppName, "app-name", "", "Application name")
	flags.StringVar(&in.AppNameSource, "app-name-source", "", "Where the app name comes from: input or repository")
	flags.StringVar(&in.CommitFormat, "commit-format", "", "Commit rendering: full or short")
	flags.StringVar(&in.DeploymentURL, "deployment-url", "", "URL of the deployed application")
	flags.StringVar(&in.AdditionalInfo, "additional-info", "", "Free-text note included in every notification")
	flags.StringVar(&in.NotificationType, "notification-type", "", "Channels to use: teams, email, slack or all")
	flags.StringVar(&in.WebhookURL, "webhook-url", "", "Teams incoming webhook URL")
	flags.StringVar(&in.SlackWebhookURL, "slack-webhook-url", "", "Slack incoming webhook URL")
	flags.StringVar(&in.EmailTo, "email-to", "", "Comma-separated email recipients")
	flags.StringVar(&in.EmailFrom, "email-from", "", "Email sender address")
	flags.StringVar(&in.SMTPServer, "smtp-server", "", "SMTP server host")
	flags.StringVar(&in.SMTPPort, "smtp-port", "", "SMTP server port (465 uses implicit TLS)")
	flags.StringVar(&in.SMTPUsername, "smtp-username", "", "SMTP username")
	flags.StringVar(&in.SMTPPassword, "smtp-password", "", "SMTP password (prefer SMTP_PASSWORD)")
}
