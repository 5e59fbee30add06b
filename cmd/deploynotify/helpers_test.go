package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"deploynotify/internal/notifications"
	"deploynotify/internal/runcontext"
)

var testRun = runcontext.Static{
	Actor:      "octocat",
	SHA:        "0123456789abcdef0123456789abcdef01234567",
	Repository: "acme/orders-service",
	RunID:      "42",
	ServerURL:  "https://github.com",
}

var inputNames = []string{
	"ENVIRONMENT", "STATUS", "APP-NAME", "APP-NAME-SOURCE", "COMMIT-FORMAT",
	"DEPLOYMENT-URL", "ADDITIONAL-INFO", "NOTIFICATION-TYPE", "WEBHOOK-URL",
	"SLACK-WEBHOOK-URL", "EMAIL-TO", "EMAIL-FROM", "SMTP-SERVER", "SMTP-PORT",
	"SMTP-USERNAME", "SMTP-PASSWORD",
}

type cliTestEnv struct {
	home        string
	summaryPath string
}

// setupCLITestEnv isolates the process environment so the runner's own
// variables cannot leak into a test.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	summary := filepath.Join(t.TempDir(), "step_summary.md")
	t.Setenv("GITHUB_STEP_SUMMARY", summary)
	t.Setenv("TEAMS_WEBHOOK_URL", "")
	t.Setenv("SLACK_WEBHOOK_URL", "")
	t.Setenv("SMTP_PASSWORD", "")
	for _, name := range inputNames {
		t.Setenv("INPUT_"+name, "")
	}
	return &cliTestEnv{home: home, summaryPath: summary}
}

func runCLI(t *testing.T, args []string, opts ...notifications.Option) (string, string, error) {
	t.Helper()
	ctx := newCommandContext()
	ctx.provider = testRun
	ctx.dispatcherOpts = opts

	cmd := newRootCommandWith(ctx)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
