package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// BossRepository implements boss battle persistence for PostgreSQL
type BossRepository struct {
	db *pgxpool.Pool
}

// NewBossRepository creates a new BossRepository
func NewBossRepository(db *pgxpool.Pool) *BossRepository {
	return &BossRepository{db: db}
}

// InsertBossBattle records a scored exam event
func (r *BossRepository) InsertBossBattle(ctx context.Context, battle *domain.BossBattle) error {
	query := `
		INSERT INTO boss_battles (player_id, boss_type, name, base_score, bonus_applied, final_score, battle_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, battle.PlayerID, battle.BossType, battle.Name,
		battle.BaseScore, battle.BonusApplied, battle.FinalScore, battle.BattleDate).
		Scan(&battle.ID, &battle.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert boss battle: %w", err)
	}
	return nil
}

// ListBossBattles returns a player's battle records, newest first
func (r *BossRepository) ListBossBattles(ctx context.Context, playerID string) ([]domain.BossBattle, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, player_id, boss_type, name, base_score, bonus_applied, final_score, battle_date, created_at
		FROM boss_battles
		WHERE player_id = $1
		ORDER BY battle_date DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list boss battles: %w", err)
	}
	defer rows.Close()

	var battles []domain.BossBattle
	for rows.Next() {
		var b domain.BossBattle
		if err := rows.Scan(&b.ID, &b.PlayerID, &b.BossType, &b.Name, &b.BaseScore,
			&b.BonusApplied, &b.FinalScore, &b.BattleDate, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to list boss battles: %w", err)
		}
		battles = append(battles, b)
	}
	return battles, rows.Err()
}
