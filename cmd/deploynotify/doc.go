// Package main hosts the deploynotify CLI entrypoint and command graph.
//
// The Cobra-based command tree loads layered configuration (TOML file,
// INPUT_* action inputs, flags), builds the logger, and hands the run to the
// notifications dispatcher. Output is split deliberately: logs go to stderr,
// while stdout carries workflow commands, the step summary fallback and JSON
// output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
