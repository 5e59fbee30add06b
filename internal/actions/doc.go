// Package actions talks to the CI runner's reporting surface.
//
// It renders the run summary as markdown and appends it to the step summary
// file (or stdout when none is configured), and emits workflow commands such
// as ::error:: for the failure signal.
package actions
