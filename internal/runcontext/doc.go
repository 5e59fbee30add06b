// Package runcontext captures the identifiers of the pipeline run that invoked
// deploynotify (actor, commit, repository, run id, server URL).
//
// The values come from the GITHUB_* variables the runner exports. Everything
// downstream depends on the Provider interface so tests can supply a Static
// context instead of mutating the process environment.
package runcontext
