package actions_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deploynotify/internal/actions"
	"deploynotify/internal/logging"
	"deploynotify/internal/notifications"
)

var sampleSummary = notifications.Summary{
	ID:          "dispatch-1",
	Type:        "all",
	Status:      "Success",
	Environment: "production",
}

func TestRenderSummaryListsTypeStatusEnvironment(t *testing.T) {
	out := actions.RenderSummary(sampleSummary)
	if !strings.HasPrefix(out, "# Notification Sent :bell:\n\n") {
		t.Fatalf("expected a top-level heading, got %q", out)
	}
	for _, fragment := range []string{
		"# Notification Sent :bell:",
		"- Type: all",
		"- Status: Success",
		"- Environment: production",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in summary:\n%s", fragment, out)
		}
	}
}

func TestWriteSummaryToStdoutWithoutPath(t *testing.T) {
	var stdout bytes.Buffer
	reporter := actions.NewReporter("", &stdout, logging.NewNop())
	if err := reporter.WriteSummary(context.Background(), sampleSummary); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if !strings.Contains(stdout.String(), "Notification Sent") {
		t.Fatalf("expected summary on stdout, got %q", stdout.String())
	}
}

func TestWriteSummaryAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary", "step_summary.md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("previous step\n"), 0o644); err != nil {
		t.Fatalf("seed summary: %v", err)
	}

	var stdout bytes.Buffer
	reporter := actions.NewReporter(path, &stdout, logging.NewNop())
	for i := 0; i < 2; i++ {
		if err := reporter.WriteSummary(context.Background(), sampleSummary); err != nil {
			t.Fatalf("WriteSummary: %v", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "previous step\n") {
		t.Fatalf("expected existing content to be preserved, got %q", text)
	}
	if n := strings.Count(text, "# Notification Sent :bell:"); n != 2 {
		t.Fatalf("expected two appended summaries, got %d", n)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
}
