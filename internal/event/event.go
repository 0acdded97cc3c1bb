package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	ExpGranted         Type = "exp.granted"
	PlayerLevelUp      Type = "player.level_up"
	PunishmentApplied  Type = "punishment.applied"
	PunishmentResolved Type = "punishment.resolved"
	HonorRecovered     Type = "honor.recovered"
	BossBattleRecorded Type = "boss.battle_recorded"
	LeaderboardRefresh Type = "leaderboard.refresh"
)

// Typed event payloads for type safety

// ExpGrantedPayloadV1 is the typed payload for ledger grant events
type ExpGrantedPayloadV1 struct {
	PlayerID     string  `json:"player_id"`
	Activity     string  `json:"activity"`
	BaseAmount   int     `json:"base_amount"`
	ActualAmount int     `json:"actual_amount"`
	Multiplier   float64 `json:"multiplier"`
	Timestamp    int64   `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	HonorBonus int    `json:"honor_bonus"`
	Timestamp  int64  `json:"timestamp"`
}

// PunishmentPayloadV1 is the typed payload for punishment lifecycle events
type PunishmentPayloadV1 struct {
	PunishmentID int64  `json:"punishment_id"`
	PlayerID     string `json:"player_id"`
	Category     string `json:"category"`
	Severity     string `json:"severity"`
	ExpPenalty   int    `json:"exp_penalty"`
	HonorLoss    int    `json:"honor_loss"`
	Timestamp    int64  `json:"timestamp"`
}

// HonorRecoveredPayloadV1 is the typed payload for honor recovery sweeps
type HonorRecoveredPayloadV1 struct {
	PlayersAffected int   `json:"players_affected"`
	Amount          int   `json:"amount"`
	Timestamp       int64 `json:"timestamp"`
}

// BossBattlePayloadV1 is the typed payload for boss battle record events
type BossBattlePayloadV1 struct {
	PlayerID   string `json:"player_id"`
	BossType   string `json:"boss_type"`
	BaseScore  int    `json:"base_score"`
	FinalScore int    `json:"final_score"`
	Timestamp  int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewExpGrantedEvent creates a new ledger grant event
func NewExpGrantedEvent(playerID, activity string, baseAmount, actualAmount int, multiplier float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ExpGranted,
		Payload: ExpGrantedPayloadV1{
			PlayerID:     playerID,
			Activity:     activity,
			BaseAmount:   baseAmount,
			ActualAmount: actualAmount,
			Multiplier:   multiplier,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(playerID string, oldLevel, newLevel, honorBonus int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLevelUp,
		Payload: LevelUpPayloadV1{
			PlayerID:   playerID,
			OldLevel:   oldLevel,
			NewLevel:   newLevel,
			HonorBonus: honorBonus,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPunishmentAppliedEvent creates a new punishment applied event
func NewPunishmentAppliedEvent(punishmentID int64, playerID, category, severity string, expPenalty, honorLoss int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PunishmentApplied,
		Payload: PunishmentPayloadV1{
			PunishmentID: punishmentID,
			PlayerID:     playerID,
			Category:     category,
			Severity:     severity,
			ExpPenalty:   expPenalty,
			HonorLoss:    honorLoss,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPunishmentResolvedEvent creates a new punishment resolved event
func NewPunishmentResolvedEvent(punishmentID int64, playerID, category string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PunishmentResolved,
		Payload: PunishmentPayloadV1{
			PunishmentID: punishmentID,
			PlayerID:     playerID,
			Category:     category,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewHonorRecoveredEvent creates a new honor recovery sweep event
func NewHonorRecoveredEvent(playersAffected, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HonorRecovered,
		Payload: HonorRecoveredPayloadV1{
			PlayersAffected: playersAffected,
			Amount:          amount,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBossBattleRecordedEvent creates a new boss battle record event
func NewBossBattleRecordedEvent(playerID, bossType string, baseScore, finalScore int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BossBattleRecorded,
		Payload: BossBattlePayloadV1{
			PlayerID:   playerID,
			BossType:   bossType,
			BaseScore:  baseScore,
			FinalScore: finalScore,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLeaderboardRefreshEvent signals that cached leaderboards are stale
func NewLeaderboardRefreshEvent() Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     LeaderboardRefresh,
		Payload:  nil,
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously. Callers that need isolation from
	// handler latency wrap the bus in a ResilientPublisher.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
