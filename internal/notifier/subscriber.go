package notifier

import (
	"context"

	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// Subscriber bridges internal events to the external webhook. Delivery is
// fire-and-forget: a failed webhook never fails the operation that raised
// the event.
type Subscriber struct {
	client *Client
	bus    event.Bus
}

// NewSubscriber creates a new webhook event subscriber
func NewSubscriber(client *Client, bus event.Bus) *Subscriber {
	return &Subscriber{
		client: client,
		bus:    bus,
	}
}

// Subscribe registers handlers for the notification-worthy event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PlayerLevelUp, s.forward("level_up"))
	s.bus.Subscribe(event.PunishmentApplied, s.forward("punishment_applied"))
	s.bus.Subscribe(event.PunishmentResolved, s.forward("punishment_resolved"))
	s.bus.Subscribe(event.LeaderboardRefresh, s.forward("leaderboard_refresh"))
	s.bus.Subscribe(event.HonorRecovered, s.forward("honor_recovered"))
}

func (s *Subscriber) forward(kind string) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		if err := s.client.Send(ctx, kind, evt.Payload); err != nil {
			// Webhook being unavailable is expected; never propagate
			logger.FromContext(ctx).Debug("Webhook delivery failed", "kind", kind, "error", err)
		}
		return nil
	}
}
