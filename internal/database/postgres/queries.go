package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, letting read
// helpers serve pooled and transactional callers alike
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func queryLevelThresholds(ctx context.Context, q querier) ([]domain.LevelThreshold, error) {
	rows, err := q.Query(ctx,
		`SELECT level, exp_required, COALESCE(bonus_description, '') FROM levels ORDER BY level ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLevels, err)
	}
	defer rows.Close()

	var thresholds []domain.LevelThreshold
	for rows.Next() {
		var t domain.LevelThreshold
		if err := rows.Scan(&t.Level, &t.ExpRequired, &t.BonusDescription); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLevels, err)
		}
		thresholds = append(thresholds, t)
	}
	return thresholds, rows.Err()
}

func queryActiveStatusEffects(ctx context.Context, q querier, playerID string) ([]domain.StatusEffect, error) {
	query := `
		SELECT id, player_id, effect_type, description, exp_multiplier, punishment_id, start_time, end_time, is_active
		FROM status_effects
		WHERE player_id = $1 AND is_active
		ORDER BY start_time ASC
	`
	rows, err := q.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEffects, err)
	}
	defer rows.Close()

	var effects []domain.StatusEffect
	for rows.Next() {
		var e domain.StatusEffect
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.EffectType, &e.Description, &e.ExpMultiplier,
			&e.PunishmentID, &e.StartTime, &e.EndTime, &e.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEffects, err)
		}
		effects = append(effects, e)
	}
	return effects, rows.Err()
}

const punishmentSelect = `
	SELECT id, player_id, category, severity, description, exp_penalty, honor_loss,
		effect_type, duration_days, resolved, resolved_at, evidence, issued_by, created_at
	FROM punishments`

func scanPunishment(row rowScanner) (*domain.PunishmentRecord, error) {
	var rec domain.PunishmentRecord
	err := row.Scan(&rec.ID, &rec.PlayerID, &rec.Category, &rec.Severity, &rec.Description,
		&rec.ExpPenalty, &rec.HonorLoss, &rec.EffectType, &rec.DurationDays,
		&rec.Resolved, &rec.ResolvedAt, &rec.Evidence, &rec.IssuedBy, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPunishmentNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPunishment, err)
	}
	return &rec, nil
}

func queryRecentAttendance(ctx context.Context, q querier, playerID string, limit int) ([]domain.Attendance, error) {
	query := `
		SELECT id, player_id, dungeon_id, attended, exp_earned, created_at
		FROM attendance
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := q.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAttendance, err)
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.ID, &a.PlayerID, &a.DungeonID, &a.Attended, &a.ExpEarned, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAttendance, err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
