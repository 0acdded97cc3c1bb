package metrics

import (
	"context"

	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ExpGranted,
		event.PlayerLevelUp,
		event.PunishmentApplied,
		event.PunishmentResolved,
		event.HonorRecovered,
		event.BossBattleRecorded,
		event.LeaderboardRefresh,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ExpGranted:
		payload, ok := evt.Payload.(event.ExpGrantedPayloadV1)
		if !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		if payload.ActualAmount >= 0 {
			ExpGranted.WithLabelValues(payload.Activity).Add(float64(payload.ActualAmount))
		} else {
			ExpDeducted.WithLabelValues(payload.Activity).Add(float64(-payload.ActualAmount))
		}

	case event.PlayerLevelUp:
		LevelUps.Inc()

	case event.PunishmentApplied:
		payload, ok := evt.Payload.(event.PunishmentPayloadV1)
		if !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		PunishmentsApplied.WithLabelValues(payload.Category, payload.Severity).Inc()

	case event.PunishmentResolved:
		payload, ok := evt.Payload.(event.PunishmentPayloadV1)
		if !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		PunishmentsResolved.WithLabelValues(payload.Category).Inc()

	case event.HonorRecovered:
		payload, ok := evt.Payload.(event.HonorRecoveredPayloadV1)
		if !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		HonorRecovered.Add(float64(payload.PlayersAffected * payload.Amount))

	case event.BossBattleRecorded:
		payload, ok := evt.Payload.(event.BossBattlePayloadV1)
		if !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		BossBattles.WithLabelValues(payload.BossType).Inc()

	case event.LeaderboardRefresh:
		LeaderboardRefreshes.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
