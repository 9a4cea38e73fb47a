package events

import (
	"context"
	"fmt"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/logger"
)

// Handler consumes a notification event. Implementations are registered with
// the publisher once, at startup.
type Handler interface {
	Handle(ctx context.Context, event domain.NotificationSendingEvent) error
}

// Publisher is the in-process event bus. Dispatch is synchronous: Publish
// returns only after every registered handler has seen the event, so a
// publisher observes handler faults directly and per-key ordering follows
// from call order.
type Publisher struct {
	handlers []Handler
}

func NewPublisher(handlers ...Handler) *Publisher {
	return &Publisher{handlers: handlers}
}

// Subscribe registers an additional handler. Not safe to call after Publish
// traffic has started; registration happens during wiring.
func (p *Publisher) Subscribe(h Handler) {
	p.handlers = append(p.handlers, h)
}

func (p *Publisher) Publish(ctx context.Context, event domain.NotificationSendingEvent) error {
	logger.Debug("Publishing event", "eventID", event.ID, "type", event.Type, "projectID", event.ProjectID)

	for _, h := range p.handlers {
		if err := h.Handle(ctx, event); err != nil {
			return fmt.Errorf("event handler failed: %w", err)
		}
	}
	return nil
}
