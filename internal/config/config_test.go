package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"deploynotify/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GITHUB_STEP_SUMMARY", "")
	t.Setenv("TEAMS_WEBHOOK_URL", "")
	t.Setenv("SLACK_WEBHOOK_URL", "")
	return home
}

func TestLoadDefaultConfigWhenFileMissing(t *testing.T) {
	home := isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "deploynotify", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Notification.Type != config.TypeTeams {
		t.Fatalf("expected teams by default, got %q", cfg.Notification.Type)
	}
	if cfg.Email.From != "noreply@azure-deployments.com" {
		t.Fatalf("unexpected default sender %q", cfg.Email.From)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Fatalf("expected default port 587, got %d", cfg.Email.SMTPPort)
	}
	if cfg.Notification.AppNameSource != config.AppNameFromInput {
		t.Fatalf("unexpected app name source %q", cfg.Notification.AppNameSource)
	}
	if cfg.Notification.CommitFormat != config.CommitFull {
		t.Fatalf("unexpected commit format %q", cfg.Notification.CommitFormat)
	}
	if cfg.Summary.Path != "" {
		t.Fatalf("expected stdout summary, got %q", cfg.Summary.Path)
	}
	if cfg.EmailConfigured() {
		t.Fatal("expected email channel to be unconfigured")
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "deploynotify.toml")

	type payload struct {
		Notification struct {
			Type         string `toml:"type"`
			Environment  string `toml:"environment"`
			CommitFormat string `toml:"commit_format"`
		} `toml:"notification"`
		Email struct {
			To         string `toml:"to"`
			SMTPServer string `toml:"smtp_server"`
			SMTPPort   int    `toml:"smtp_port"`
		} `toml:"email"`
	}
	custom := payload{}
	custom.Notification.Type = "ALL"
	custom.Notification.Environment = "staging"
	custom.Notification.CommitFormat = "Short"
	custom.Email.To = "ops@example.com"
	custom.Email.SMTPServer = "smtp.example.com"
	custom.Email.SMTPPort = 465
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Notification.Type != config.TypeAll {
		t.Fatalf("expected type normalized to all, got %q", cfg.Notification.Type)
	}
	if cfg.Notification.CommitFormat != config.CommitShort {
		t.Fatalf("expected short commit format, got %q", cfg.Notification.CommitFormat)
	}
	if cfg.Email.SMTPPort != 465 {
		t.Fatalf("expected port 465, got %d", cfg.Email.SMTPPort)
	}
	if !cfg.EmailConfigured() {
		t.Fatal("expected email channel to be configured")
	}
	got := strings.Join(cfg.Channels(), ",")
	if got != "teams,email,slack" {
		t.Fatalf("unexpected channel order %q", got)
	}
}

func TestActionInputsOverrideFileAndFlagsOverrideInputs(t *testing.T) {
	isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "deploynotify.toml")
	contents := "[notification]\nenvironment = \"file-env\"\nstatus = \"failure\"\n\n[teams]\nwebhook_url = \"https://file.example.com/hook\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("INPUT_ENVIRONMENT", "input-env")
	t.Setenv("INPUT_STATUS", "success")
	t.Setenv("INPUT_WEBHOOK-URL", "")
	t.Setenv("INPUT_SMTP-PORT", "465")
	t.Setenv("INPUT_NOTIFICATION-TYPE", "email")

	cfg, _, _, err := config.Load(configPath, config.Inputs{Environment: "flag-env"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Notification.Environment != "flag-env" {
		t.Fatalf("expected flag to win, got %q", cfg.Notification.Environment)
	}
	if cfg.Notification.Status != "success" {
		t.Fatalf("expected input to override file, got %q", cfg.Notification.Status)
	}
	if cfg.Teams.WebhookURL != "https://file.example.com/hook" {
		t.Fatalf("expected empty input to leave file value, got %q", cfg.Teams.WebhookURL)
	}
	if cfg.Email.SMTPPort != 465 {
		t.Fatalf("expected smtp port from input, got %d", cfg.Email.SMTPPort)
	}
	if cfg.Notification.Type != config.TypeEmail {
		t.Fatalf("expected email type, got %q", cfg.Notification.Type)
	}
}

func TestReadInputsUsesProvidedEnvironment(t *testing.T) {
	in, err := config.ReadInputs(map[string]string{
		"INPUT_APP-NAME":        "orders-api",
		"INPUT_ADDITIONAL-INFO": "line one\nline two",
		"INPUT_EMAIL-TO":        "a@example.com",
		"UNRELATED":             "ignored",
	})
	if err != nil {
		t.Fatalf("ReadInputs returned error: %v", err)
	}
	if in.AppName != "orders-api" || in.EmailTo != "a@example.com" {
		t.Fatalf("unexpected inputs: %+v", in)
	}
	if in.AdditionalInfo != "line one\nline two" {
		t.Fatalf("expected multi-line info to survive, got %q", in.AdditionalInfo)
	}
}

func TestApplyFallsBackToDefaultPort(t *testing.T) {
	cfg := config.Default()
	cfg.Email.SMTPPort = 2525
	cfg.Apply(config.Inputs{SMTPPort: "smtp"})
	if cfg.Email.SMTPPort != 587 {
		t.Fatalf("expected port 587 for unparseable input, got %d", cfg.Email.SMTPPort)
	}

	cfg.Apply(config.Inputs{SMTPPort: " 465 "})
	if cfg.Email.SMTPPort != 465 {
		t.Fatalf("expected port 465, got %d", cfg.Email.SMTPPort)
	}
}

func TestLoadToleratesUnparseablePortForTeamsRun(t *testing.T) {
	home := isolateEnv(t)
	t.Setenv("INPUT_NOTIFICATION-TYPE", "teams")
	t.Setenv("INPUT_SMTP-PORT", "abc")

	cfg, _, _, err := config.Load(filepath.Join(home, "none.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Notification.Type != config.TypeTeams {
		t.Fatalf("unexpected type %q", cfg.Notification.Type)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Fatalf("expected default port 587, got %d", cfg.Email.SMTPPort)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "unknown type",
			mutate: func(c *config.Config) { c.Notification.Type = "pager" },
			want:   "notification.type",
		},
		{
			name:   "unknown app name source",
			mutate: func(c *config.Config) { c.Notification.AppNameSource = "guess" },
			want:   "notification.app_name_source",
		},
		{
			name:   "unknown commit format",
			mutate: func(c *config.Config) { c.Notification.CommitFormat = "medium" },
			want:   "notification.commit_format",
		},
		{
			name:   "port out of range",
			mutate: func(c *config.Config) { c.Email.SMTPPort = 70000 },
			want:   "email.smtp_port",
		},
		{
			name:   "non-positive timeout",
			mutate: func(c *config.Config) { c.Teams.RequestTimeout = 0 },
			want:   "teams.request_timeout",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	cfg := config.Default()
	if err := cfg.ValidateRequest(); err == nil || !strings.Contains(err.Error(), "environment") {
		t.Fatalf("expected missing environment error, got %v", err)
	}
	cfg.Notification.Environment = "production"
	if err := cfg.ValidateRequest(); err == nil || !strings.Contains(err.Error(), "status") {
		t.Fatalf("expected missing status error, got %v", err)
	}
	cfg.Notification.Status = "success"
	if err := cfg.ValidateRequest(); err == nil || !strings.Contains(err.Error(), "app-name") {
		t.Fatalf("expected missing app name error, got %v", err)
	}
	cfg.Notification.AppNameSource = config.AppNameFromRepository
	if err := cfg.ValidateRequest(); err != nil {
		t.Fatalf("expected derived app name to satisfy validation, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Notification.Type != config.TypeTeams {
		t.Fatalf("expected sample type teams, got %q", cfg.Notification.Type)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Fatalf("expected sample port 587, got %d", cfg.Email.SMTPPort)
	}
}
