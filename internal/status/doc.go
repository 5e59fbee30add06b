// Package status derives the presentation attributes (color, emoji, label)
// shared by every notification channel from a free-form deployment status.
//
// Resolution is fail-closed: unknown values render as a failure.
package status
