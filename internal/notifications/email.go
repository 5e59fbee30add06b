package notifications

import (
	"fmt"
	"html"
	"strings"
)

// Email is a rendered email notification.
type Email struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type emailRow struct {
	label string
	// value is already HTML.
	value string
}

// BuildEmail renders msg as an HTML document. Every caller-supplied value is
// escaped.
func BuildEmail(msg Message) Email {
	rows := []emailRow{
		{label: "Application:", value: html.EscapeString(msg.AppName)},
		{label: "Environment:", value: html.EscapeString(msg.Environment)},
		{label: "Status:", value: html.EscapeString(msg.Status.Text)},
		{label: "Deployed by:", value: html.EscapeString(msg.Actor)},
		{label: "Commit:", value: html.EscapeString(msg.Commit)},
	}
	if msg.DeploymentURL != "" {
		link := html.EscapeString(msg.DeploymentURL)
		rows = append(rows, emailRow{label: "URL:", value: fmt.Sprintf("<a href='%s'>%s</a>", link, link)})
	}

	var b strings.Builder
	b.WriteString("<html>\n<body style='font-family: Arial, sans-serif;'>\n")
	fmt.Fprintf(&b, "<h2 style='color: %s;'>%s Deployment %s</h2>\n",
		msg.Status.HexColor(), msg.Status.Emoji, html.EscapeString(msg.Status.Text))
	b.WriteString("<hr/>\n<table style='width: 100%; border-collapse: collapse;'>\n")
	for idx, row := range rows {
		shade := ""
		if idx%2 == 1 {
			shade = " style='background-color: #f5f5f5;'"
		}
		fmt.Fprintf(&b, "<tr%s><td style='padding: 8px; font-weight: bold;'>%s</td><td style='padding: 8px;'>%s</td></tr>\n",
			shade, row.label, row.value)
	}
	b.WriteString("</table>\n")
	if info := strings.TrimSpace(msg.AdditionalInfo); info != "" {
		escaped := strings.ReplaceAll(html.EscapeString(info), "\n", "<br/>")
		fmt.Fprintf(&b, "<p><strong>Additional Info:</strong><br/>%s</p>\n", escaped)
	}
	b.WriteString("<hr/>\n<p style='font-size: 12px; color: #666;'>\n")
	fmt.Fprintf(&b, "<a href='%s'>View Workflow Run</a>\n", html.EscapeString(msg.RunURL))
	b.WriteString("</p>\n</body>\n</html>\n")

	return Email{Subject: msg.Title(), HTML: b.String()}
}
