package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rakandito/ClassQuest_Go/internal/attendance"
	"github.com/rakandito/ClassQuest_Go/internal/boss"
	"github.com/rakandito/ClassQuest_Go/internal/database"
	"github.com/rakandito/ClassQuest_Go/internal/handler"
	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/leaderboard"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/metrics"
	"github.com/rakandito/ClassQuest_Go/internal/player"
	"github.com/rakandito/ClassQuest_Go/internal/punishment"
	"github.com/rakandito/ClassQuest_Go/internal/sidequest"
	"github.com/rakandito/ClassQuest_Go/internal/statuseffect"
)

// Services bundles the domain services the HTTP surface exposes
type Services struct {
	Player      player.Service
	Leveling    leveling.Service
	Honor       honor.Service
	Effects     statuseffect.Service
	Punishments punishment.Service
	Attendance  attendance.Service
	Boss        boss.Service
	Sidequests  sidequest.Service
	Leaderboard leaderboard.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Player routes
		r.Route("/players", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterPlayer(services.Player))
			r.Get("/by-username", handler.HandleGetPlayerByUsername(services.Player))

			r.Route("/{playerID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetPlayer(services.Player))
				r.Get("/progress", handler.HandleGetProgress(services.Leveling))
				r.Get("/privileges", handler.HandleGetPrivileges(services.Honor))
				r.Get("/explog", handler.HandleGetExpLog(services.Leveling))
				r.Get("/attendance", handler.HandleGetRecentAttendance(services.Attendance))
				r.Get("/battles", handler.HandleListBattles(services.Boss))

				r.Route("/effects", func(r chi.Router) {
					r.Get("/", handler.HandleListEffects(services.Effects))
					r.Post("/", handler.HandleApplyEffect(services.Effects))
					r.Delete("/{effectID}", handler.HandleRemoveEffect(services.Effects))
				})
			})
		})

		// Ledger routes
		r.Post("/exp/grant", handler.HandleGrantExp(services.Leveling))

		// Punishment routes
		punishmentHandler := handler.NewPunishmentHandler(services.Punishments)
		r.Route("/punishments", func(r chi.Router) {
			r.Post("/plagiarism", punishmentHandler.HandlePlagiarism)
			r.Post("/cheating", punishmentHandler.HandleCheating)
			r.Post("/direct", punishmentHandler.HandleDirect)
			r.Get("/{punishmentID}", punishmentHandler.HandleGet)
			r.Post("/{punishmentID}/resolve", punishmentHandler.HandleResolve)
		})
		r.Get("/players/{playerID}/punishments", punishmentHandler.HandleList)

		// Dungeon and attendance routes
		r.Route("/dungeons", func(r chi.Router) {
			r.Post("/", handler.HandleCreateDungeon(services.Attendance))
			r.Route("/{dungeonID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetDungeon(services.Attendance))
				r.Put("/status", handler.HandleUpdateDungeonStatus(services.Attendance))
				r.Post("/attendance", handler.HandleRecordAttendance(services.Attendance))
			})
		})

		// Boss battle routes
		r.Route("/battles", func(r chi.Router) {
			r.Post("/", handler.HandleRecordBattle(services.Boss))
			r.Get("/preview", handler.HandlePreviewScore(services.Boss))
		})

		// Sidequest routes
		r.Route("/sidequests", func(r chi.Router) {
			r.Post("/", handler.HandleCreateSidequest(services.Sidequests))
			r.Route("/{sidequestID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetSidequest(services.Sidequests))
				r.Post("/submit", handler.HandleSubmitSidequest(services.Sidequests))
			})
		})
		r.Post("/submissions/{submissionID}/grade", handler.HandleGradeSubmission(services.Sidequests))

		// Leaderboard
		r.Get("/leaderboard", handler.HandleGetLeaderboard(services.Leaderboard))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
