package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldChannel names the delivery channel (teams, email, slack).
	FieldChannel = "channel"
	// FieldCorrelationID is the standardized structured logging key for dispatch identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldOutcome is the per-channel result (sent, skipped, failed).
	FieldOutcome = "outcome"
	// FieldEnvironment is the deployment environment being announced.
	FieldEnvironment = "environment"
	// FieldStatus is the resolved deployment status text.
	FieldStatus = "status"
)

type correlationKey struct{}

// WithCorrelationID returns a child context carrying the dispatch identifier.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationIDFromContext extracts the dispatch identifier, if any.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(correlationKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := CorrelationIDFromContext(ctx); ok {
		return logger.With(slog.String(FieldCorrelationID, id))
	}
	return logger
}
