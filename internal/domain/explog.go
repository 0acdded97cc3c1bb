package domain

import "time"

// ActivityCategory classifies the source of an EXP ledger entry
type ActivityCategory string

// Activity categories for EXP log entries
const (
	ActivityQuest         ActivityCategory = "quest"
	ActivityAssignment    ActivityCategory = "assignment"
	ActivityParticipation ActivityCategory = "participation"
	ActivityBonus         ActivityCategory = "bonus"
	ActivityAdmin         ActivityCategory = "admin"
	ActivityPenalty       ActivityCategory = "penalty"
	ActivityOther         ActivityCategory = "other"
)

// ValidActivityCategory reports whether c is a known activity category
func ValidActivityCategory(c ActivityCategory) bool {
	switch c {
	case ActivityQuest, ActivityAssignment, ActivityParticipation,
		ActivityBonus, ActivityAdmin, ActivityPenalty, ActivityOther:
		return true
	}
	return false
}

// ExpLogEntry is an immutable, append-only record of one EXP ledger
// invocation. ExpDelta carries the post-multiplier amount, which may be
// negative for penalties. Canonical read order is CreatedAt descending.
type ExpLogEntry struct {
	ID          int64            `json:"id"`
	PlayerID    string           `json:"player_id"`
	Activity    ActivityCategory `json:"activity"`
	ExpDelta    int              `json:"exp_delta"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}

// LedgerResult describes the outcome of one GrantExp invocation
type LedgerResult struct {
	PlayerID     string  `json:"player_id"`
	NewExp       int     `json:"new_exp"`
	NewTotalExp  int     `json:"new_total_exp"`
	LeveledUp    bool    `json:"leveled_up"`
	OldLevel     int     `json:"old_level"`
	NewLevel     int     `json:"new_level"`
	Multiplier   float64 `json:"multiplier"`
	BaseAmount   int     `json:"base_amount"`
	ActualAmount int     `json:"actual_amount"`
	HonorBonus   int     `json:"honor_bonus"`
	ExpRemaining int     `json:"exp_remaining"`
}
