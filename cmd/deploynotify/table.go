package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"deploynotify/internal/notifications"
)

const detailWidth = 60

var outcomeColors = map[notifications.Outcome]text.Colors{
	notifications.OutcomeSent:    {text.FgGreen},
	notifications.OutcomeSkipped: {text.FgYellow},
	notifications.OutcomeFailed:  {text.FgRed, text.Bold},
}

// renderResults draws one row per attempted channel. Channels after a
// failure were never attempted and have no row.
func renderResults(summary notifications.Summary, colorize bool) string {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	tw := table.NewWriter()
	tw.SetStyle(style)
	if summary.ID != "" {
		tw.SetTitle("Dispatch " + summary.ID)
	}
	tw.AppendHeader(table.Row{"Channel", "Outcome", "Duration", "Detail"})

	for _, r := range summary.Results {
		detail := r.Reason
		if r.Err != nil {
			detail = r.Err.Error()
		}
		outcome := string(r.Outcome)
		if colors, ok := outcomeColors[r.Outcome]; ok && colorize {
			outcome = colors.Sprint(outcome)
		}
		tw.AppendRow(table.Row{r.Channel, outcome, r.Duration.Round(time.Millisecond).String(), detail})
	}

	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d sent, %d skipped",
		summary.Count(notifications.OutcomeSent), summary.Count(notifications.OutcomeSkipped))})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Duration", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Detail", WidthMax: detailWidth},
	})
	return tw.Render()
}
