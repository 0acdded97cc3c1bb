package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/scheduler"
	"github.com/rakandito/ClassQuest_Go/internal/server"
	"github.com/rakandito/ClassQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server            *server.Server
	EffectExpiryWorker *worker.EffectExpiryWorker
	Scheduler         *scheduler.Scheduler
	WorkerPool        *worker.Pool
	EventPublisher    *event.ResilientPublisher
	Redis             *redis.Client
	DBPool            *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Background workers and scheduler (cancel pending timers, drain jobs)
// 3. External connections (redis, database)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.EffectExpiryWorker != nil {
		if err := components.EffectExpiryWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgEffectWorkerShutdownFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
		slog.Info(LogMsgWorkerPoolStopped)
	}

	// Publisher drains after all event producers have stopped
	if components.EventPublisher != nil {
		if err := components.EventPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgPublisherShutdownFailed, "error", err)
		}
	}

	if components.Redis != nil {
		if err := components.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
		slog.Info(LogMsgDatabasePoolClosed)
	}

	slog.Info(LogMsgServerStopped)
}
