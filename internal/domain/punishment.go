package domain

import "time"

// PunishmentCategory classifies a punishment record
type PunishmentCategory string

// Punishment categories
const (
	PunishmentPlagiarism     PunishmentCategory = "plagiarism"
	PunishmentCheating       PunishmentCategory = "cheating"
	PunishmentLateSubmission PunishmentCategory = "late_submission"
	PunishmentAbsence        PunishmentCategory = "absence"
)

// PlagiarismSeverity grades how serious a plagiarism case is
type PlagiarismSeverity string

// Plagiarism severities
const (
	PlagiarismMinor    PlagiarismSeverity = "minor"
	PlagiarismMajor    PlagiarismSeverity = "major"
	PlagiarismCritical PlagiarismSeverity = "critical"
)

// BossType identifies which exam tier a cheating case occurred in
type BossType string

// Boss battle tiers
const (
	BossMini BossType = "mini_boss"
	BossMid  BossType = "mid_boss"
	BossLast BossType = "last_boss"
)

// ValidBossType reports whether t is a known boss tier
func ValidBossType(t BossType) bool {
	switch t {
	case BossMini, BossMid, BossLast:
		return true
	}
	return false
}

// SeverityLabel is the record-keeping severity stored on a punishment
type SeverityLabel string

// Severity labels
const (
	SeverityMinor    SeverityLabel = "minor"
	SeverityMajor    SeverityLabel = "major"
	SeverityCritical SeverityLabel = "critical"
)

// PunishmentRecord stores a punishment issued to a player. Applying a record
// happens exactly once at creation; resolution deactivates the spawned status
// effect but never restores lost EXP or honor.
type PunishmentRecord struct {
	ID           int64              `json:"id"`
	PlayerID     string             `json:"player_id"`
	Category     PunishmentCategory `json:"category"`
	Severity     SeverityLabel      `json:"severity"`
	Description  string             `json:"description"`
	ExpPenalty   int                `json:"exp_penalty"`
	HonorLoss    int                `json:"honor_loss"`
	EffectType   *EffectType        `json:"effect_type,omitempty"`
	DurationDays int                `json:"duration_days"`
	Resolved     bool               `json:"resolved"`
	ResolvedAt   *time.Time         `json:"resolved_at,omitempty"`
	Evidence     map[string]string  `json:"evidence,omitempty"`
	IssuedBy     string             `json:"issued_by"`
	CreatedAt    time.Time          `json:"created_at"`
}

// PunishmentResult describes an applied punishment alongside the ledger
// outcome of its EXP penalty.
type PunishmentResult struct {
	Record   *PunishmentRecord `json:"record"`
	Ledger   *LedgerResult     `json:"ledger,omitempty"`
	NewHonor int               `json:"new_honor"`
}
