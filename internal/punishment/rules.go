package punishment

import (
	"fmt"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// Rule is one immutable penalty row: what a punishment costs and which
// status effect it spawns, if any.
type Rule struct {
	ExpPenalty   int
	HonorLoss    int
	Effect       *domain.EffectType
	DurationDays int
}

func effectPtr(t domain.EffectType) *domain.EffectType { return &t }

var plagiarismRules = map[domain.PlagiarismSeverity]Rule{
	domain.PlagiarismMinor:    {ExpPenalty: 100, HonorLoss: 10},
	domain.PlagiarismMajor:    {ExpPenalty: 300, HonorLoss: 20, Effect: effectPtr(domain.EffectCurse), DurationDays: 7},
	domain.PlagiarismCritical: {ExpPenalty: 500, HonorLoss: 30, Effect: effectPtr(domain.EffectCurse), DurationDays: 14},
}

var cheatingRules = map[domain.BossType]Rule{
	domain.BossMini: {ExpPenalty: 200, HonorLoss: 15, Effect: effectPtr(domain.EffectWeakness), DurationDays: 5},
	domain.BossMid:  {ExpPenalty: 400, HonorLoss: 25, Effect: effectPtr(domain.EffectCurse), DurationDays: 10},
	domain.BossLast: {ExpPenalty: 600, HonorLoss: 40, Effect: effectPtr(domain.EffectCurse), DurationDays: 21},
}

var absenceRule = Rule{ExpPenalty: 50, HonorLoss: 5, Effect: effectPtr(domain.EffectFatigue), DurationDays: 3}

// AbsenceThreshold is how many consecutive missed dungeons trigger the
// automatic absence punishment
const AbsenceThreshold = 3

// Trigger is the tagged variant over punishment causes. Each variant knows
// its rule row and how to describe itself on the record.
type Trigger interface {
	Rule() (Rule, error)
	Category() domain.PunishmentCategory
	Severity() domain.SeverityLabel
	Description() string
}

// PlagiarismTrigger punishes a plagiarism finding graded by severity
type PlagiarismTrigger struct {
	PlagiarismSeverity domain.PlagiarismSeverity
}

// Rule returns the penalty row for the severity
func (t PlagiarismTrigger) Rule() (Rule, error) {
	r, ok := plagiarismRules[t.PlagiarismSeverity]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", domain.ErrInvalidSeverity, t.PlagiarismSeverity)
	}
	return r, nil
}

// Category returns the record category
func (t PlagiarismTrigger) Category() domain.PunishmentCategory { return domain.PunishmentPlagiarism }

// Severity returns the record-keeping severity label
func (t PlagiarismTrigger) Severity() domain.SeverityLabel {
	return domain.SeverityLabel(t.PlagiarismSeverity)
}

// Description returns the record description
func (t PlagiarismTrigger) Description() string {
	return fmt.Sprintf("Plagiarism detected - %s severity", t.PlagiarismSeverity)
}

// CheatingTrigger punishes cheating during a boss battle, keyed by boss tier
type CheatingTrigger struct {
	BossType domain.BossType
}

// Rule returns the penalty row for the boss tier
func (t CheatingTrigger) Rule() (Rule, error) {
	r, ok := cheatingRules[t.BossType]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", domain.ErrInvalidBossType, t.BossType)
	}
	return r, nil
}

// Category returns the record category
func (t CheatingTrigger) Category() domain.PunishmentCategory { return domain.PunishmentCheating }

// Severity derives the record-keeping label from the boss tier. It does not
// change the penalty amounts.
func (t CheatingTrigger) Severity() domain.SeverityLabel {
	if t.BossType == domain.BossLast {
		return domain.SeverityMajor
	}
	return domain.SeverityMinor
}

// Description returns the record description
func (t CheatingTrigger) Description() string {
	return fmt.Sprintf("Cheating detected in %s battle", t.BossType)
}

// AbsenceTrigger punishes a run of consecutive missed dungeons
type AbsenceTrigger struct {
	ConsecutiveAbsences int
}

// Rule returns the absence penalty row
func (t AbsenceTrigger) Rule() (Rule, error) { return absenceRule, nil }

// Category returns the record category
func (t AbsenceTrigger) Category() domain.PunishmentCategory { return domain.PunishmentAbsence }

// Severity returns the record-keeping severity label
func (t AbsenceTrigger) Severity() domain.SeverityLabel { return domain.SeverityMinor }

// Description returns the record description
func (t AbsenceTrigger) Description() string {
	return fmt.Sprintf("Consecutive absence detected (%d times)", t.ConsecutiveAbsences)
}
