package config

const (
	defaultConfigPath     = "~/.config/deploynotify/config.toml"
	projectConfigName     = "deploynotify.toml"
	defaultType           = TypeTeams
	defaultAppNameSource  = AppNameFromInput
	defaultCommitFormat   = CommitFull
	defaultEmailFrom      = "noreply@azure-deployments.com"
	defaultSMTPPort       = 587
	defaultSMTPTimeout    = 15
	defaultWebhookTimeout = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Notification types accepted by notification.type / notification-type.
const (
	TypeTeams = "teams"
	TypeEmail = "email"
	TypeSlack = "slack"
	TypeAll   = "all"
)

// Channel names in dispatch order.
const (
	ChannelTeams = "teams"
	ChannelEmail = "email"
	ChannelSlack = "slack"
)

// Application name sources.
const (
	AppNameFromInput      = "input"
	AppNameFromRepository = "repository"
)

// Commit formats.
const (
	CommitFull  = "full"
	CommitShort = "short"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Notification: Notification{
			Type:          defaultType,
			AppNameSource: defaultAppNameSource,
			CommitFormat:  defaultCommitFormat,
		},
		Teams: Teams{
			RequestTimeout: defaultWebhookTimeout,
		},
		Slack: Slack{
			RequestTimeout: defaultWebhookTimeout,
		},
		Email: Email{
			From:     defaultEmailFrom,
			SMTPPort: defaultSMTPPort,
			Timeout:  defaultSMTPTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
