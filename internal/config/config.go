package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	ServiceName string
	Version     string
	LogLevel    string
	LogFormat   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// RedisAddr enables the Redis leaderboard cache backend when set;
	// empty means the in-process cache is used instead
	RedisAddr     string
	RedisPassword string

	// Webhook URL the notifier posts level-up and punishment announcements to
	NotifyWebhookURL string

	APIKey string // API key for authentication

	// HonorRecoveryInterval controls how often the passive honor recovery
	// job runs; HonorRecoveryAmount is added per player per run
	HonorRecoveryInterval time.Duration
	HonorRecoveryAmount   int

	// LeaderboardCacheTTL bounds how stale the cached leaderboard may get
	LeaderboardCacheTTL time.Duration

	// Event publishing resilience settings
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// EventLogRetentionDays controls how long audit events are kept;
	// EventLogCleanupInterval controls how often the cleanup job runs
	EventLogRetentionDays   int
	EventLogCleanupInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:      getEnv("ENVIRONMENT", "dev"),
		ServiceName:      getEnv("SERVICE_NAME", "classquest"),
		Version:          getEnv("VERSION", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "classquest"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		APIKey:           getEnv("API_KEY", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	interval, err := getEnvDuration("HONOR_RECOVERY_INTERVAL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.HonorRecoveryInterval = interval

	amount, err := getEnvInt("HONOR_RECOVERY_AMOUNT", 1)
	if err != nil {
		return nil, err
	}
	cfg.HonorRecoveryAmount = amount

	ttl, err := getEnvDuration("LEADERBOARD_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.LeaderboardCacheTTL = ttl

	maxRetries, err := getEnvInt("EVENT_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}
	cfg.EventMaxRetries = maxRetries

	retryDelay, err := getEnvDuration("EVENT_RETRY_DELAY", 2*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.EventRetryDelay = retryDelay

	cfg.EventDeadLetterPath = getEnv("EVENT_DEADLETTER_PATH", "logs/event_deadletter.jsonl")

	retentionDays, err := getEnvInt("EVENT_LOG_RETENTION_DAYS", 90)
	if err != nil {
		return nil, err
	}
	cfg.EventLogRetentionDays = retentionDays

	cleanupInterval, err := getEnvDuration("EVENT_LOG_CLEANUP_INTERVAL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.EventLogCleanupInterval = cleanupInterval

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvDuration retrieves a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
