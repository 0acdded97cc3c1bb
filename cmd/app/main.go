package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rakandito/ClassQuest_Go/internal/attendance"
	"github.com/rakandito/ClassQuest_Go/internal/boss"
	"github.com/rakandito/ClassQuest_Go/internal/bootstrap"
	"github.com/rakandito/ClassQuest_Go/internal/config"
	"github.com/rakandito/ClassQuest_Go/internal/database"
	"github.com/rakandito/ClassQuest_Go/internal/eventlog"
	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/leaderboard"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/player"
	"github.com/rakandito/ClassQuest_Go/internal/punishment"
	"github.com/rakandito/ClassQuest_Go/internal/scheduler"
	"github.com/rakandito/ClassQuest_Go/internal/server"
	"github.com/rakandito/ClassQuest_Go/internal/sidequest"
	"github.com/rakandito/ClassQuest_Go/internal/statuseffect"
	"github.com/rakandito/ClassQuest_Go/internal/worker"
)

const (
	dbMaxConnections  = 10
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute

	workerCount  = 4
	jobQueueSize = 64

	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize event system: %v", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// Event subscribers must be registered before the first publish
	eventLogService := eventlog.NewService(repos.EventLog)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        publisher,
		EventLogService: eventLogService,
		Config:          cfg,
	}); err != nil {
		log.Fatalf("Failed to register event handlers: %v", err)
	}

	// Domain services. All publishing goes through the resilient publisher
	// so transient subscriber failures never fail the originating request.
	playerService := player.NewService(repos.Game)
	levelingService := leveling.NewService(repos.Game, publisher)
	honorService := honor.NewService(repos.Game, publisher)
	effectService := statuseffect.NewService(repos.Game)
	punishmentService := punishment.NewService(repos.Game, levelingService, publisher)
	attendanceService := attendance.NewService(repos.Attendance, repos.Game, levelingService, punishmentService)
	bossService := boss.NewService(repos.Game, repos.Boss, publisher)
	sidequestService := sidequest.NewService(repos.Sidequest, repos.Game, levelingService)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	leaderboardService := leaderboard.NewService(repos.Game, publisher, redisClient, cfg.LeaderboardCacheTTL)

	// Background jobs
	pool := worker.NewPool(workerCount, jobQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.HonorRecoveryInterval, worker.NewHonorRecoveryJob(honorService, cfg.HonorRecoveryAmount))
	sched.Schedule(cfg.EventLogCleanupInterval, eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))

	effectWorker := worker.NewEffectExpiryWorker(effectService)
	effectWorker.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, server.Services{
		Player:      playerService,
		Leveling:    levelingService,
		Honor:       honorService,
		Effects:     effectService,
		Punishments: punishmentService,
		Attendance:  attendanceService,
		Boss:        bossService,
		Sidequests:  sidequestService,
		Leaderboard: leaderboardService,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		EffectExpiryWorker: effectWorker,
		Scheduler:          sched,
		WorkerPool:         pool,
		EventPublisher:     publisher,
		Redis:              redisClient,
		DBPool:             dbPool,
	})
}
