package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// gameTx implements repository.GameTx on a pgx transaction
type gameTx struct {
	tx pgx.Tx
}

// Commit commits the transaction, mapping retryable conflicts to domain errors
func (t *gameTx) Commit(ctx context.Context) error {
	return mapCommitError(t.tx.Commit(ctx))
}

// Rollback rolls back the transaction
func (t *gameTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return err
	}
	return nil
}

// GetPlayerForUpdate loads a player row with a row lock, serializing
// concurrent mutations of the same player for the transaction's lifetime
func (t *gameTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1 FOR UPDATE`
	return scanPlayer(t.tx.QueryRow(ctx, query, uid))
}

// UpdatePlayerProgress persists the EXP/level/honor state of a player
func (t *gameTx) UpdatePlayerProgress(ctx context.Context, player *domain.Player) error {
	query := `
		UPDATE players
		SET current_exp = $1, total_exp = $2, current_level = $3, honor_points = $4, updated_at = NOW()
		WHERE player_id = $5
	`
	tag, err := t.tx.Exec(ctx, query, player.CurrentExp, player.TotalExp,
		player.CurrentLevel, player.HonorPoints, player.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlayer, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// UpdatePlayerHonor persists only the honor balance
func (t *gameTx) UpdatePlayerHonor(ctx context.Context, playerID string, honorPoints int) error {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE players SET honor_points = $1, updated_at = NOW() WHERE player_id = $2`,
		honorPoints, uid)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlayer, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// InsertExpLog appends an immutable ledger entry
func (t *gameTx) InsertExpLog(ctx context.Context, entry *domain.ExpLogEntry) error {
	query := `
		INSERT INTO exp_logs (player_id, activity, exp_delta, description, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	err := t.tx.QueryRow(ctx, query, entry.PlayerID, entry.Activity, entry.ExpDelta, entry.Description).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertExpLog, err)
	}
	return nil
}

// GetLevelThresholds returns the level table sorted ascending by level
func (t *gameTx) GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error) {
	return queryLevelThresholds(ctx, t.tx)
}

// GetActiveStatusEffects returns the player's active effects inside the transaction
func (t *gameTx) GetActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return queryActiveStatusEffects(ctx, t.tx, uid.String())
}

// InsertStatusEffect creates a status effect row
func (t *gameTx) InsertStatusEffect(ctx context.Context, effect *domain.StatusEffect) error {
	query := `
		INSERT INTO status_effects (player_id, effect_type, description, exp_multiplier, punishment_id, start_time, end_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := t.tx.QueryRow(ctx, query, effect.PlayerID, effect.EffectType, effect.Description,
		effect.ExpMultiplier, effect.PunishmentID, effect.StartTime, effect.EndTime, effect.IsActive).
		Scan(&effect.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEffect, err)
	}
	return nil
}

// DeactivateStatusEffect marks a single effect inactive
func (t *gameTx) DeactivateStatusEffect(ctx context.Context, effectID int64) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE status_effects SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, effectID)
	if err != nil {
		return fmt.Errorf("failed to deactivate status effect: %w", err)
	}
	return nil
}

// DeactivateEffectsForPunishment marks every effect spawned by a punishment
// inactive and returns how many rows changed
func (t *gameTx) DeactivateEffectsForPunishment(ctx context.Context, punishmentID int64) (int64, error) {
	tag, err := t.tx.Exec(ctx,
		`UPDATE status_effects SET is_active = FALSE, updated_at = NOW() WHERE punishment_id = $1 AND is_active`,
		punishmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate punishment effects: %w", err)
	}
	return tag.RowsAffected(), nil
}

// InsertPunishment creates a punishment record
func (t *gameTx) InsertPunishment(ctx context.Context, record *domain.PunishmentRecord) error {
	query := `
		INSERT INTO punishments (player_id, category, severity, description, exp_penalty, honor_loss,
			effect_type, duration_days, resolved, evidence, issued_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10, NOW())
		RETURNING id, created_at
	`
	err := t.tx.QueryRow(ctx, query, record.PlayerID, record.Category, record.Severity,
		record.Description, record.ExpPenalty, record.HonorLoss, record.EffectType,
		record.DurationDays, record.Evidence, record.IssuedBy).
		Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPunish, err)
	}
	return nil
}

// GetPunishmentForUpdate loads a punishment row with a row lock
func (t *gameTx) GetPunishmentForUpdate(ctx context.Context, id int64) (*domain.PunishmentRecord, error) {
	return scanPunishment(t.tx.QueryRow(ctx, punishmentSelect+` WHERE id = $1 FOR UPDATE`, id))
}

// GetUnresolvedPunishment returns the oldest unresolved punishment of a
// category for a player, or nil when none exists
func (t *gameTx) GetUnresolvedPunishment(ctx context.Context, playerID string, category domain.PunishmentCategory) (*domain.PunishmentRecord, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	rec, err := scanPunishment(t.tx.QueryRow(ctx,
		punishmentSelect+` WHERE player_id = $1 AND category = $2 AND NOT resolved ORDER BY created_at ASC LIMIT 1`,
		uid, category))
	if err != nil {
		if err == domain.ErrPunishmentNotFound {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// MarkPunishmentResolved sets resolved and the resolution timestamp
func (t *gameTx) MarkPunishmentResolved(ctx context.Context, id int64) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE punishments SET resolved = TRUE, resolved_at = NOW() WHERE id = $1 AND NOT resolved`, id)
	if err != nil {
		return fmt.Errorf("failed to resolve punishment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyResolved
	}
	return nil
}

// GetRecentAttendance returns the player's most recent attendance records,
// newest first, bounded by limit
func (t *gameTx) GetRecentAttendance(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return queryRecentAttendance(ctx, t.tx, uid.String(), limit)
}
