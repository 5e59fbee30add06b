package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"deploynotify/internal/logging"
	"deploynotify/internal/notifications"
)

const lockRetryDelay = 50 * time.Millisecond

// RenderSummary formats the run summary as step-summary markdown.
func RenderSummary(s notifications.Summary) string {
	var b strings.Builder
	b.WriteString("# Notification Sent :bell:\n\n")
	fmt.Fprintf(&b, "- Type: %s\n", s.Type)
	fmt.Fprintf(&b, "- Status: %s\n", s.Status)
	fmt.Fprintf(&b, "- Environment: %s\n", s.Environment)
	b.WriteString("\n")
	return b.String()
}

// Reporter writes summaries to the step summary file, or to Stdout when no
// path is configured.
type Reporter struct {
	SummaryPath string
	Stdout      io.Writer
	Logger      *slog.Logger
}

// NewReporter builds a Reporter. A nil stdout means os.Stdout.
func NewReporter(summaryPath string, stdout io.Writer, logger *slog.Logger) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Reporter{
		SummaryPath: strings.TrimSpace(summaryPath),
		Stdout:      stdout,
		Logger:      logging.NewComponentLogger(logger, "reporter"),
	}
}

// WriteSummary appends the rendered summary. Concurrent steps sharing the
// summary file are serialized with a sidecar lock file.
func (r *Reporter) WriteSummary(ctx context.Context, s notifications.Summary) error {
	content := RenderSummary(s)
	if r.SummaryPath == "" {
		_, err := io.WriteString(r.Stdout, content)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.SummaryPath), 0o755); err != nil {
		return fmt.Errorf("ensure summary directory: %w", err)
	}

	lock := flock.New(r.SummaryPath + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock step summary: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock step summary: %s is busy", r.SummaryPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.Logger.Warn("release summary lock failed", logging.Error(err))
		}
	}()

	file, err := os.OpenFile(r.SummaryPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open step summary: %w", err)
	}
	if _, err := io.WriteString(file, content); err != nil {
		file.Close()
		return fmt.Errorf("write step summary: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close step summary: %w", err)
	}
	r.Logger.Debug("step summary written", logging.String("path", r.SummaryPath))
	return nil
}
