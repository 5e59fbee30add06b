// Package preflight provides readiness checks for the channels and paths a
// notification run depends on.
//
// The CLI "deploynotify check" command runs RunAll and renders each Result.
// Only channels selected by notification.type are checked, and a channel
// without its required settings is reported as skipped rather than failed,
// mirroring how the dispatcher treats it.
package preflight
