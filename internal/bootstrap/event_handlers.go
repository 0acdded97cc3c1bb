package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/rakandito/ClassQuest_Go/internal/config"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/eventlog"
	"github.com/rakandito/ClassQuest_Go/internal/metrics"
	"github.com/rakandito/ClassQuest_Go/internal/notifier"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	Config          *config.Config
}

// RegisterEventHandlers sets up all event subscribers:
// - Webhook notifier (level ups, punishments, honor recovery announcements)
// - Metrics collector (event-based metrics)
// - Event logger (persists events to database)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	// Webhook notifier. A blank URL disables delivery, the subscriber
	// still registers so the wiring stays uniform.
	notifyClient := notifier.NewClient(deps.Config.NotifyWebhookURL)
	notifySubscriber := notifier.NewSubscriber(notifyClient, deps.EventBus)
	notifySubscriber.Subscribe()
	slog.Info(LogMsgNotifierInitialized, "enabled", notifyClient.Enabled())

	// Metrics collector
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	// Event logger
	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	return nil
}
