package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventQueryResolved   EventType = "query_resolved"
	EventSearchPerformed EventType = "search_performed"
)

// Event represents an analytics event emitted by the query pipeline.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// QueryResolvedPayload describes one resolved conversational query.
type QueryResolvedPayload struct {
	Query   string `json:"query"`
	Intent  string `json:"intent"`
	Matches int    `json:"matches"`
}

// SearchPerformedPayload describes one live-search invocation.
type SearchPerformedPayload struct {
	Query   string `json:"query"`
	Matches int    `json:"matches"`
}

// NewQueryResolved builds a query_resolved event.
func NewQueryResolved(query, intent string, matches int) Event {
	return newEvent(EventQueryResolved, QueryResolvedPayload{Query: query, Intent: intent, Matches: matches})
}

// NewSearchPerformed builds a search_performed event.
func NewSearchPerformed(query string, matches int) Event {
	return newEvent(EventSearchPerformed, SearchPerformedPayload{Query: query, Matches: matches})
}

func newEvent(eventType EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
