// Package events publishes domain events to RabbitMQ. Publishing is best effort:
// callers log failures and carry on.
package events

import (
	"context"
	"time"

	"github.com/1vor/fulltruck-challenge/internal/model"
)

// SearchCreatedEvent is emitted after a freight search is stored.
type SearchCreatedEvent struct {
	Type       string              `json:"type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Search     model.FreightSearch `json:"search"`
}

// TypeSearchCreated is the Type of SearchCreatedEvent.
const TypeSearchCreated = "freight_search.created"

// NewSearchCreated wraps s in an event stamped with now.
func NewSearchCreated(s model.FreightSearch, now time.Time) SearchCreatedEvent {
	return SearchCreatedEvent{Type: TypeSearchCreated, OccurredAt: now.UTC(), Search: s}
}

// Publisher delivers domain events.
type Publisher interface {
	PublishSearchCreated(ctx context.Context, e SearchCreatedEvent) error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) PublishSearchCreated(context.Context, SearchCreatedEvent) error { return nil }
