package punishment

import (
	"context"
	"fmt"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// Service defines the interface for punishment operations
type Service interface {
	ApplyPlagiarism(ctx context.Context, playerID string, severity domain.PlagiarismSeverity, evidence map[string]string, issuedBy string) (*domain.PunishmentResult, error)
	ApplyCheating(ctx context.Context, playerID string, bossType domain.BossType, issuedBy string) (*domain.PunishmentResult, error)
	ApplyDirect(ctx context.Context, req DirectRequest) (*domain.PunishmentResult, error)
	CheckAndApplyAbsence(ctx context.Context, playerID, issuedBy string) (*domain.PunishmentRecord, bool, error)
	Resolve(ctx context.Context, punishmentID int64) (*domain.PunishmentRecord, error)
	Get(ctx context.Context, punishmentID int64) (*domain.PunishmentRecord, error)
	List(ctx context.Context, playerID string) ([]domain.PunishmentRecord, error)
}

// DirectRequest is an admin-specified punishment outside the fixed rule
// tables. This is the only punishment path that can carry a silence effect
// or the late_submission category.
type DirectRequest struct {
	PlayerID     string                    `json:"player_id" validate:"required,uuid"`
	Category     domain.PunishmentCategory `json:"category" validate:"required"`
	Severity     domain.SeverityLabel      `json:"severity" validate:"required"`
	Description  string                    `json:"description"`
	ExpPenalty   int                       `json:"exp_penalty" validate:"min=0"`
	HonorLoss    int                       `json:"honor_loss" validate:"min=0"`
	EffectType   *domain.EffectType        `json:"effect_type,omitempty"`
	DurationDays int                       `json:"duration_days" validate:"min=0"`
	Evidence     map[string]string         `json:"evidence,omitempty"`
	IssuedBy     string                    `json:"issued_by"`
}

// service implements the Service interface
type service struct {
	repo     repository.Game
	leveling leveling.Service
	bus      event.Bus
}

// NewService creates a new punishment service
func NewService(repo repository.Game, lvl leveling.Service, bus event.Bus) Service {
	return &service{
		repo:     repo,
		leveling: lvl,
		bus:      bus,
	}
}

// ApplyPlagiarism creates and applies a plagiarism punishment
func (s *service) ApplyPlagiarism(ctx context.Context, playerID string, severity domain.PlagiarismSeverity, evidence map[string]string, issuedBy string) (*domain.PunishmentResult, error) {
	return s.applyTrigger(ctx, playerID, PlagiarismTrigger{PlagiarismSeverity: severity}, evidence, issuedBy)
}

// ApplyCheating creates and applies a cheating punishment keyed by boss tier
func (s *service) ApplyCheating(ctx context.Context, playerID string, bossType domain.BossType, issuedBy string) (*domain.PunishmentResult, error) {
	evidence := map[string]string{"boss_type": string(bossType)}
	return s.applyTrigger(ctx, playerID, CheatingTrigger{BossType: bossType}, evidence, issuedBy)
}

// ApplyDirect creates and applies an admin-specified punishment
func (s *service) ApplyDirect(ctx context.Context, req DirectRequest) (*domain.PunishmentResult, error) {
	if req.EffectType != nil && !domain.ValidEffectType(*req.EffectType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEffect, *req.EffectType)
	}
	if req.ExpPenalty < 0 || req.HonorLoss < 0 || req.DurationDays < 0 {
		return nil, fmt.Errorf("%w: penalties and duration must not be negative", domain.ErrInvalidInput)
	}

	rule := Rule{
		ExpPenalty:   req.ExpPenalty,
		HonorLoss:    req.HonorLoss,
		Effect:       req.EffectType,
		DurationDays: req.DurationDays,
	}
	record := &domain.PunishmentRecord{
		PlayerID:     req.PlayerID,
		Category:     req.Category,
		Severity:     req.Severity,
		Description:  req.Description,
		ExpPenalty:   req.ExpPenalty,
		HonorLoss:    req.HonorLoss,
		EffectType:   req.EffectType,
		DurationDays: req.DurationDays,
		Evidence:     req.Evidence,
		IssuedBy:     req.IssuedBy,
	}
	return s.apply(ctx, record, rule)
}

// CheckAndApplyAbsence inspects a player's most recent attendance and applies
// the absence punishment when the consecutive-miss threshold is reached.
// Returns the punishment record (new or pre-existing) and whether a new one
// was created. Idempotent per unresolved window.
func (s *service) CheckAndApplyAbsence(ctx context.Context, playerID, issuedBy string) (*domain.PunishmentRecord, bool, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the player first so two concurrent checks serialize
	if _, err := tx.GetPlayerForUpdate(ctx, playerID); err != nil {
		return nil, false, err
	}

	recent, err := tx.GetRecentAttendance(ctx, playerID, AbsenceThreshold)
	if err != nil {
		return nil, false, err
	}

	// Count the prefix of misses starting from the most recent record;
	// one attended session resets the streak
	consecutive := 0
	for _, a := range recent {
		if a.Attended {
			break
		}
		consecutive++
	}
	if consecutive < AbsenceThreshold {
		return nil, false, nil
	}

	existing, err := tx.GetUnresolvedPunishment(ctx, playerID, domain.PunishmentAbsence)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		log.Debug("Absence punishment already open", "player_id", playerID, "punishment_id", existing.ID)
		return existing, false, nil
	}

	trigger := AbsenceTrigger{ConsecutiveAbsences: consecutive}
	rule, _ := trigger.Rule()
	record := &domain.PunishmentRecord{
		PlayerID:     playerID,
		Category:     trigger.Category(),
		Severity:     trigger.Severity(),
		Description:  trigger.Description(),
		ExpPenalty:   rule.ExpPenalty,
		HonorLoss:    rule.HonorLoss,
		EffectType:   rule.Effect,
		DurationDays: rule.DurationDays,
		Evidence:     map[string]string{"consecutive_absences": fmt.Sprintf("%d", consecutive)},
		IssuedBy:     issuedBy,
	}

	result, err := s.applyInTx(ctx, tx, record, rule)
	if err != nil {
		return nil, false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}

	s.publishApplied(ctx, record, result)
	return record, true, nil
}

// Resolve marks a punishment resolved and deactivates the status effects it
// spawned. Lost EXP and honor are not restored.
func (s *service) Resolve(ctx context.Context, punishmentID int64) (*domain.PunishmentRecord, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record, err := tx.GetPunishmentForUpdate(ctx, punishmentID)
	if err != nil {
		return nil, err
	}
	if record.Resolved {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAlreadyResolved, punishmentID)
	}

	if err := tx.MarkPunishmentResolved(ctx, punishmentID); err != nil {
		return nil, err
	}
	deactivated, err := tx.DeactivateEffectsForPunishment(ctx, punishmentID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	record.Resolved = true
	record.ResolvedAt = &now

	log.Info("Punishment resolved",
		"punishment_id", punishmentID,
		"player_id", record.PlayerID,
		"effects_deactivated", deactivated)

	if err := s.bus.Publish(ctx, event.NewPunishmentResolvedEvent(
		record.ID, record.PlayerID, string(record.Category))); err != nil {
		log.Warn("Failed to publish punishment resolved event", "error", err)
	}
	return record, nil
}

// Get returns a punishment record by ID
func (s *service) Get(ctx context.Context, punishmentID int64) (*domain.PunishmentRecord, error) {
	return s.repo.GetPunishment(ctx, punishmentID)
}

// List returns a player's punishment records, newest first
func (s *service) List(ctx context.Context, playerID string) ([]domain.PunishmentRecord, error) {
	return s.repo.ListPunishments(ctx, playerID)
}

func (s *service) applyTrigger(ctx context.Context, playerID string, trigger Trigger, evidence map[string]string, issuedBy string) (*domain.PunishmentResult, error) {
	rule, err := trigger.Rule()
	if err != nil {
		return nil, err
	}
	record := &domain.PunishmentRecord{
		PlayerID:     playerID,
		Category:     trigger.Category(),
		Severity:     trigger.Severity(),
		Description:  trigger.Description(),
		ExpPenalty:   rule.ExpPenalty,
		HonorLoss:    rule.HonorLoss,
		EffectType:   rule.Effect,
		DurationDays: rule.DurationDays,
		Evidence:     evidence,
		IssuedBy:     issuedBy,
	}
	return s.apply(ctx, record, rule)
}

func (s *service) apply(ctx context.Context, record *domain.PunishmentRecord, rule Rule) (*domain.PunishmentResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.GetPlayerForUpdate(ctx, record.PlayerID); err != nil {
		return nil, err
	}

	result, err := s.applyInTx(ctx, tx, record, rule)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publishApplied(ctx, record, result)
	return result, nil
}

// applyInTx performs the whole punishment inside one transaction: record
// insert, scaled EXP penalty through the ledger, unscaled honor deduction,
// then effect creation linked back to the record.
func (s *service) applyInTx(ctx context.Context, tx repository.GameTx, record *domain.PunishmentRecord, rule Rule) (*domain.PunishmentResult, error) {
	if err := tx.InsertPunishment(ctx, record); err != nil {
		return nil, err
	}

	result := &domain.PunishmentResult{Record: record}

	// EXP penalty goes through the ledger so active effects scale it.
	// Runs before the new effect exists and before the honor deduction, so
	// neither influences this grant's multiplier.
	if rule.ExpPenalty > 0 {
		ledger, err := s.leveling.GrantExpInTx(ctx, tx, record.PlayerID, -rule.ExpPenalty,
			domain.ActivityPenalty, fmt.Sprintf("Punishment penalty: %s", record.Category))
		if err != nil {
			return nil, err
		}
		result.Ledger = ledger
	}

	// Honor loss is direct and never scaled
	player, err := tx.GetPlayerForUpdate(ctx, record.PlayerID)
	if err != nil {
		return nil, err
	}
	newHonor := player.HonorPoints
	if rule.HonorLoss > 0 {
		newHonor = player.HonorPoints - rule.HonorLoss
		if newHonor < 0 {
			newHonor = 0
		}
		if err := tx.UpdatePlayerHonor(ctx, record.PlayerID, newHonor); err != nil {
			return nil, err
		}
	}
	result.NewHonor = newHonor

	if rule.Effect != nil {
		now := time.Now()
		effect := &domain.StatusEffect{
			PlayerID:      record.PlayerID,
			EffectType:    *rule.Effect,
			Description:   fmt.Sprintf("Punishment effect: %s", record.Description),
			ExpMultiplier: domain.EffectMultiplier(*rule.Effect),
			PunishmentID:  &record.ID,
			StartTime:     now,
			IsActive:      true,
		}
		if rule.DurationDays > 0 {
			end := now.AddDate(0, 0, rule.DurationDays)
			effect.EndTime = &end
		}
		if err := tx.InsertStatusEffect(ctx, effect); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *service) publishApplied(ctx context.Context, record *domain.PunishmentRecord, result *domain.PunishmentResult) {
	log := logger.FromContext(ctx)

	log.Info("Punishment applied",
		"punishment_id", record.ID,
		"player_id", record.PlayerID,
		"category", record.Category,
		"severity", record.Severity,
		"exp_penalty", record.ExpPenalty,
		"honor_loss", record.HonorLoss)

	if err := s.bus.Publish(ctx, event.NewPunishmentAppliedEvent(
		record.ID, record.PlayerID, string(record.Category), string(record.Severity),
		record.ExpPenalty, record.HonorLoss)); err != nil {
		log.Warn("Failed to publish punishment applied event", "error", err)
	}
	if result.Ledger != nil {
		s.leveling.PublishResultEvents(ctx, domain.ActivityPenalty, result.Ledger)
	}
}
