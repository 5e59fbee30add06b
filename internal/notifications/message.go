package notifications

import (
	"fmt"
	"strings"

	"deploynotify/internal/config"
	"deploynotify/internal/runcontext"
	"deploynotify/internal/status"
)

// Request carries the caller-supplied description of the deployment.
type Request struct {
	Environment    string `json:"environment"`
	AppName        string `json:"app_name"`
	DeploymentURL  string `json:"deployment_url,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	Status         string `json:"status"`
}

// NewRequest extracts the per-run fields from the [notification] section.
func NewRequest(n config.Notification) Request {
	return Request{
		Environment:    n.Environment,
		AppName:        n.AppName,
		DeploymentURL:  n.DeploymentURL,
		AdditionalInfo: n.AdditionalInfo,
		Status:         n.Status,
	}
}

// Naming selects how the application name and commit are presented.
type Naming struct {
	AppNameSource string
	CommitFormat  string
}

// Message is everything a payload builder needs. It is assembled once per
// run and shared by every channel.
type Message struct {
	Status         status.Info `json:"status"`
	Environment    string      `json:"environment"`
	AppName        string      `json:"app_name"`
	DeploymentURL  string      `json:"deployment_url,omitempty"`
	AdditionalInfo string      `json:"additional_info,omitempty"`
	Actor          string      `json:"actor"`
	Commit         string      `json:"commit"`
	RunURL         string      `json:"run_url"`
}

// NewMessage combines the resolved status, the request and the run context.
func NewMessage(info status.Info, req Request, rc runcontext.Context, naming Naming) (Message, error) {
	appName, err := ResolveAppName(req, rc, naming.AppNameSource)
	if err != nil {
		return Message{}, err
	}
	commit := rc.SHA
	if naming.CommitFormat == config.CommitShort {
		commit = rc.ShortSHA()
	}
	return Message{
		Status:         info,
		Environment:    strings.TrimSpace(req.Environment),
		AppName:        appName,
		DeploymentURL:  strings.TrimSpace(req.DeploymentURL),
		AdditionalInfo: req.AdditionalInfo,
		Actor:          rc.Actor,
		Commit:         commit,
		RunURL:         rc.RunURL(),
	}, nil
}

// ResolveAppName returns the explicit app name when one was given. With the
// repository source it otherwise derives "<repository-name>-<environment>".
func ResolveAppName(req Request, rc runcontext.Context, source string) (string, error) {
	if name := strings.TrimSpace(req.AppName); name != "" {
		return name, nil
	}
	if source != config.AppNameFromRepository {
		return "", Wrap(ErrConfiguration, "", "resolve app name", "app-name is required", nil)
	}
	repo := rc.RepositoryName()
	if repo == "" {
		return "", Wrap(ErrConfiguration, "", "resolve app name", "repository is unknown (GITHUB_REPOSITORY unset)", nil)
	}
	return fmt.Sprintf("%s-%s", repo, strings.TrimSpace(req.Environment)), nil
}

// Title is shared by the Teams card, the email subject and the Slack
// attachment.
func (m Message) Title() string {
	return fmt.Sprintf("%s Deployment %s: %s", m.Status.Emoji, m.Status.Text, m.AppName)
}

// Fact is one labelled row of a notification.
type Fact struct {
	Label string
	Value string
}

// Facts lists the rows shown in chat cards. The URL row is present only when
// a deployment URL was given.
func (m Message) Facts() []Fact {
	facts := []Fact{
		{Label: "Status:", Value: m.Status.Text},
		{Label: "Environment:", Value: m.Environment},
		{Label: "Application:", Value: m.AppName},
		{Label: "Deployed by:", Value: m.Actor},
		{Label: "Commit:", Value: m.Commit},
	}
	if m.DeploymentURL != "" {
		facts = append(facts, Fact{Label: "URL:", Value: m.DeploymentURL})
	}
	return facts
}
