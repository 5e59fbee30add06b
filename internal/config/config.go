package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Notification contains the deployment event being announced and how it is
// presented.
type Notification struct {
	Type           string `toml:"type"`
	Environment    string `toml:"environment"`
	Status         string `toml:"status"`
	AppName        string `toml:"app_name"`
	AppNameSource  string `toml:"app_name_source"`
	CommitFormat   string `toml:"commit_format"`
	DeploymentURL  string `toml:"deployment_url"`
	AdditionalInfo string `toml:"additional_info"`
}

// Teams contains configuration for the Teams MessageCard webhook.
type Teams struct {
	WebhookURL     string `toml:"webhook_url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Slack contains configuration for the Slack incoming webhook.
type Slack struct {
	WebhookURL     string `toml:"webhook_url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Email contains SMTP delivery settings. The channel is skipped unless both
// To and SMTPServer are set.
type Email struct {
	To           string `toml:"to"`
	From         string `toml:"from"`
	SMTPServer   string `toml:"smtp_server"`
	SMTPPort     int    `toml:"smtp_port"`
	SMTPUsername string `toml:"smtp_username"`
	SMTPPassword string `toml:"smtp_password"`
	Timeout      int    `toml:"timeout"`
}

// Summary controls where the run summary is written.
type Summary struct {
	// Path defaults to $GITHUB_STEP_SUMMARY. Empty means stdout.
	Path string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for deploynotify.
//
// Configuration sections:
//   - Notification: the deployment event and channel selection
//   - Teams: MessageCard webhook
//   - Slack: incoming webhook
//   - Email: SMTP delivery
//   - Summary: step summary destination
//   - Logging: log format and level
type Config struct {
	Notification Notification `toml:"notification"`
	Teams        Teams        `toml:"teams"`
	Slack        Slack        `toml:"slack"`
	Email        Email        `toml:"email"`
	Summary      Summary      `toml:"summary"`
	Logging      Logging      `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates and parses a configuration file, overlays action inputs from
// the process environment and then the explicit overrides, and validates the
// result. A missing file is not an error; defaults are used.
func Load(path string, overrides ...Inputs) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	inputs, err := ReadInputs(nil)
	if err != nil {
		return nil, "", false, err
	}
	cfg.Apply(inputs)
	for _, override := range overrides {
		cfg.Apply(override)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Channels returns the channel names selected by Notification.Type, in
// dispatch order.
func (c *Config) Channels() []string {
	switch c.Notification.Type {
	case TypeTeams:
		return []string{ChannelTeams}
	case TypeEmail:
		return []string{ChannelEmail}
	case TypeSlack:
		return []string{ChannelSlack}
	case TypeAll:
		return []string{ChannelTeams, ChannelEmail, ChannelSlack}
	default:
		return nil
	}
}

// EmailConfigured reports whether the email channel has the fields it needs.
func (c *Config) EmailConfigured() bool {
	return c.Email.To != "" && c.Email.SMTPServer != ""
}
