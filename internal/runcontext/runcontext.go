package runcontext

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const defaultServerURL = "https://github.com"

// Context is a read-only snapshot of the pipeline run that triggered the
// notification.
type Context struct {
	Actor      string `env:"ACTOR" json:"actor"`
	SHA        string `env:"SHA" json:"sha"`
	Repository string `env:"REPOSITORY" json:"repository"`
	RunID      string `env:"RUN_ID" json:"run_id"`
	ServerURL  string `env:"SERVER_URL" envDefault:"https://github.com" json:"server_url"`
}

// Provider supplies the run context. Production code reads the process
// environment; tests inject fixed values.
type Provider interface {
	Context() (Context, error)
}

// EnvProvider reads GITHUB_* variables. A nil Environment means the process
// environment.
type EnvProvider struct {
	Environment map[string]string
}

// Context parses the GITHUB_* variables into a Context.
func (p EnvProvider) Context() (Context, error) {
	var ctx Context
	opts := env.Options{Prefix: "GITHUB_", Environment: p.Environment}
	if err := env.ParseWithOptions(&ctx, opts); err != nil {
		return Context{}, fmt.Errorf("read run context: %w", err)
	}
	return ctx.normalized(), nil
}

// Static returns a fixed Context.
type Static Context

// Context implements Provider.
func (s Static) Context() (Context, error) {
	return Context(s).normalized(), nil
}

func (c Context) normalized() Context {
	c.Actor = strings.TrimSpace(c.Actor)
	c.SHA = strings.TrimSpace(c.SHA)
	c.Repository = strings.Trim(strings.TrimSpace(c.Repository), "/")
	c.RunID = strings.TrimSpace(c.RunID)
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
	if c.ServerURL == "" {
		c.ServerURL = defaultServerURL
	}
	return c
}

// RunURL links to the workflow run page.
func (c Context) RunURL() string {
	return fmt.Sprintf("%s/%s/actions/runs/%s", c.ServerURL, c.Repository, c.RunID)
}

// RepositoryName returns the repository name without its owner.
func (c Context) RepositoryName() string {
	repo := c.Repository
	if idx := strings.LastIndex(repo, "/"); idx >= 0 {
		return repo[idx+1:]
	}
	return repo
}

// ShortSHA returns the first seven characters of the commit identifier.
func (c Context) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}
