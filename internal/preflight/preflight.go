package preflight

import (
	"context"
	"slices"

	"deploynotify/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail"`
}

// Failed reports whether any result neither passed nor was skipped.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Skipped {
			return true
		}
	}
	return false
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if cfg.Summary.Path != "" {
		results = append(results, CheckSummaryPath("Step summary", cfg.Summary.Path))
	} else {
		results = append(results, Result{Name: "Step summary", Skipped: true, Detail: "not configured (stdout)"})
	}

	channels := cfg.Channels()
	if slices.Contains(channels, config.ChannelTeams) {
		results = append(results, CheckWebhookURL("Teams webhook", cfg.Teams.WebhookURL))
	}
	if slices.Contains(channels, config.ChannelEmail) {
		results = append(results, checkEmail(ctx, cfg.Email)...)
	}
	if slices.Contains(channels, config.ChannelSlack) {
		results = append(results, CheckWebhookURL("Slack webhook", cfg.Slack.WebhookURL))
	}

	return results
}

func checkEmail(ctx context.Context, cfg config.Email) []Result {
	if !(cfg.To != "" && cfg.SMTPServer != "") {
		return []Result{{Name: "Email", Skipped: true, Detail: "email-to and smtp-server not both set"}}
	}
	return []Result{
		CheckAddresses("Email recipients", cfg.To),
		CheckAddresses("Email sender", cfg.From),
		CheckSMTP(ctx, cfg.SMTPServer, cfg.SMTPPort),
	}
}
