package observability

import (
	"context"

	"github.com/spec-kit/office-hours-service/internal/events"
)

// CountIntents returns an event handler that feeds per-intent counters from
// query_resolved events.
func CountIntents(m *Metrics) events.EventHandler {
	return func(_ context.Context, e events.Event) error {
		if payload, ok := e.Payload.(events.QueryResolvedPayload); ok {
			m.RecordIntent(payload.Intent)
		}
		return nil
	}
}
