package status

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	// TextSuccess is the label rendered for successful deployments.
	TextSuccess = "Success"
	// TextFailed is the label rendered for every other outcome.
	TextFailed = "Failed"
)

// Info is the display tuple derived from a deployment status.
type Info struct {
	Color string `json:"color"`
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

var (
	success = Info{Color: "28a745", Emoji: "✅", Text: TextSuccess}
	failure = Info{Color: "dc3545", Emoji: "❌", Text: TextFailed}
)

// Resolve maps a raw status value to its display tuple. Only "success"
// (compared case-insensitively) resolves to the success tuple; anything else,
// including an empty value, resolves to the failure tuple.
func Resolve(raw string) Info {
	if cases.Fold().String(strings.TrimSpace(raw)) == "success" {
		return success
	}
	return failure
}

// HexColor returns the color with a leading '#', as HTML and Slack expect it.
func (i Info) HexColor() string {
	return "#" + i.Color
}
