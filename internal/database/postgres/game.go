package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

const playerColumns = `player_id, username, display_name, current_exp, total_exp, current_level, honor_points, created_at, updated_at`

// GameRepository implements the progression store for PostgreSQL
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Username, &p.DisplayName, &p.CurrentExp, &p.TotalExp,
		&p.CurrentLevel, &p.HonorPoints, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPlayer, err)
	}
	return &p, nil
}

// GetPlayerByID returns a player by primary key
func (r *GameRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	return scanPlayer(r.db.QueryRow(ctx, query, uid))
}

// GetPlayerByUsername returns a player by username
func (r *GameRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE username = $1`
	return scanPlayer(r.db.QueryRow(ctx, query, username))
}

// CreatePlayer inserts a new player with default progression state
func (r *GameRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (username, display_name, current_exp, total_exp, current_level, honor_points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING player_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, player.Username, player.DisplayName,
		player.CurrentExp, player.TotalExp, player.CurrentLevel, player.HonorPoints).
		Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, player.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

// ListPlayerIDs returns the IDs of all players, for batch jobs
func (r *GameRepository) ListPlayerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT player_id FROM players ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlayers, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlayers, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListTopPlayers returns players ordered by lifetime EXP descending
func (r *GameRepository) ListTopPlayers(ctx context.Context, limit int) ([]domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY total_exp DESC, username ASC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlayers, err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// GetLevelThresholds returns the level table sorted ascending by level
func (r *GameRepository) GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error) {
	return queryLevelThresholds(ctx, r.db)
}

// ListExpLog returns a player's ledger entries, newest first
func (r *GameRepository) ListExpLog(ctx context.Context, playerID string, limit int) ([]domain.ExpLogEntry, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, player_id, activity, exp_delta, description, created_at
		FROM exp_logs
		WHERE player_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListExpLog, err)
	}
	defer rows.Close()

	var entries []domain.ExpLogEntry
	for rows.Next() {
		var e domain.ExpLogEntry
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.Activity, &e.ExpDelta, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListExpLog, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetPunishment returns a punishment record by ID
func (r *GameRepository) GetPunishment(ctx context.Context, id int64) (*domain.PunishmentRecord, error) {
	return scanPunishment(r.db.QueryRow(ctx, punishmentSelect+` WHERE id = $1`, id))
}

// ListPunishments returns a player's punishment records, newest first
func (r *GameRepository) ListPunishments(ctx context.Context, playerID string) ([]domain.PunishmentRecord, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, punishmentSelect+` WHERE player_id = $1 ORDER BY created_at DESC`, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPunishment, err)
	}
	defer rows.Close()

	var records []domain.PunishmentRecord
	for rows.Next() {
		rec, err := scanPunishment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// ListActiveStatusEffects returns a player's active effects without locking.
// Read-only callers (display paths) use this; the ledger uses the
// transactional variant so lazy expiry persists atomically.
func (r *GameRepository) ListActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return queryActiveStatusEffects(ctx, r.db, uid.String())
}

// DeactivateExpiredEffects flips every effect whose end time has passed to
// inactive. The ledger expires effects lazily per player; this is the batch
// sweep that catches players with no ledger activity.
func (r *GameRepository) DeactivateExpiredEffects(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE status_effects
		SET is_active = FALSE, updated_at = NOW()
		WHERE is_active AND end_time IS NOT NULL AND end_time <= NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToExpireEffects, err)
	}
	return tag.RowsAffected(), nil
}

// BeginTx starts a progression store transaction
func (r *GameRepository) BeginTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &gameTx{tx: tx}, nil
}
