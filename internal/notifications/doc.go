// Package notifications builds and delivers deployment notifications.
//
// Each channel pairs a pure payload builder (BuildTeamsCard, BuildEmail,
// BuildSlackMessage) with a sender that performs exactly one delivery
// attempt. Senders never return bare errors: they report a tagged Result so
// an unconfigured channel (skipped) is distinguishable from a delivery
// failure (failed).
//
// Dispatcher resolves the deployment status once, walks the selected
// channels in order, and stops at the first failure. Later channels are not
// attempted once one has failed.
package notifications
