// Package config loads, normalizes, and validates deploynotify configuration.
//
// Values are layered: repository defaults, then an optional TOML file, then
// the INPUT_* variables the CI runner exports for action inputs, then any
// explicit overrides (CLI flags). Secrets and well-known runner values have
// environment fallbacks such as SMTP_PASSWORD and GITHUB_STEP_SUMMARY.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, canonical enum spellings, and clear validation errors.
package config
