package domain

import "time"

// EffectType identifies a temporary EXP modifier applied by a punishment
type EffectType string

// Status effect types and their EXP multipliers
const (
	EffectCurse    EffectType = "curse"
	EffectWeakness EffectType = "weakness"
	EffectSilence  EffectType = "silence"
	EffectFatigue  EffectType = "fatigue"
)

// EffectMultiplier returns the EXP multiplier for a status effect type.
// Unknown types are treated as neutral.
func EffectMultiplier(t EffectType) float64 {
	switch t {
	case EffectCurse:
		return 0.50
	case EffectWeakness:
		return 0.75
	case EffectSilence:
		return 0.90
	case EffectFatigue:
		return 0.80
	default:
		return 1.0
	}
}

// ValidEffectType reports whether t is a known status effect type
func ValidEffectType(t EffectType) bool {
	switch t {
	case EffectCurse, EffectWeakness, EffectSilence, EffectFatigue:
		return true
	}
	return false
}

// StatusEffect is a temporary multiplicative EXP modifier on a player.
// EndTime nil means the effect lasts until explicitly resolved. Effects are
// deactivated either by punishment resolution (matched via PunishmentID) or
// lazily when a multiplier read finds them expired.
type StatusEffect struct {
	ID            int64      `json:"id"`
	PlayerID      string     `json:"player_id"`
	EffectType    EffectType `json:"effect_type"`
	Description   string     `json:"description"`
	ExpMultiplier float64    `json:"exp_multiplier"`
	PunishmentID  *int64     `json:"punishment_id,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	IsActive      bool       `json:"is_active"`
}

// Expired reports whether the effect's end time has passed at the given
// instant. Effects without an end time never expire on their own.
func (e *StatusEffect) Expired(now time.Time) bool {
	if e.EndTime == nil {
		return false
	}
	return now.After(*e.EndTime)
}
