package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// AttendanceRepository implements dungeon and attendance persistence for PostgreSQL
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// CreateDungeon inserts a class session
func (r *AttendanceRepository) CreateDungeon(ctx context.Context, dungeon *domain.Dungeon) error {
	query := `
		INSERT INTO dungeons (name, description, scheduled_date, status, exp_reward, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, dungeon.Name, dungeon.Description,
		dungeon.ScheduledDate, dungeon.Status, dungeon.ExpReward).
		Scan(&dungeon.ID, &dungeon.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert dungeon: %w", err)
	}
	return nil
}

// GetDungeon returns a dungeon by ID
func (r *AttendanceRepository) GetDungeon(ctx context.Context, id int64) (*domain.Dungeon, error) {
	query := `
		SELECT id, name, description, scheduled_date, status, exp_reward, created_at
		FROM dungeons WHERE id = $1
	`
	var d domain.Dungeon
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Description,
		&d.ScheduledDate, &d.Status, &d.ExpReward, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: %d", domain.ErrDungeonNotFound, id)
		}
		return nil, fmt.Errorf("failed to get dungeon: %w", err)
	}
	return &d, nil
}

// UpdateDungeonStatus moves a dungeon through its lifecycle
func (r *AttendanceRepository) UpdateDungeonStatus(ctx context.Context, id int64, status domain.DungeonStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE dungeons SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update dungeon status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrDungeonNotFound, id)
	}
	return nil
}

// InsertAttendance records whether a player attended a dungeon.
// The (player, dungeon) pair is unique.
func (r *AttendanceRepository) InsertAttendance(ctx context.Context, att *domain.Attendance) error {
	query := `
		INSERT INTO attendance (player_id, dungeon_id, attended, exp_earned, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, att.PlayerID, att.DungeonID, att.Attended, att.ExpEarned).
		Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: dungeon %d", domain.ErrDuplicateAttendance, att.DungeonID)
		}
		return fmt.Errorf("failed to insert attendance: %w", err)
	}
	return nil
}

// UpdateAttendanceExp records the EXP credited for an attendance row
func (r *AttendanceRepository) UpdateAttendanceExp(ctx context.Context, id int64, expEarned int) error {
	_, err := r.db.Exec(ctx, `UPDATE attendance SET exp_earned = $1 WHERE id = $2`, expEarned, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance exp: %w", err)
	}
	return nil
}

// GetAttendance returns one player's attendance for a dungeon, nil when absent
func (r *AttendanceRepository) GetAttendance(ctx context.Context, playerID string, dungeonID int64) (*domain.Attendance, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, player_id, dungeon_id, attended, exp_earned, created_at
		FROM attendance WHERE player_id = $1 AND dungeon_id = $2
	`
	var a domain.Attendance
	err = r.db.QueryRow(ctx, query, uid, dungeonID).Scan(&a.ID, &a.PlayerID, &a.DungeonID,
		&a.Attended, &a.ExpEarned, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAttendance, err)
	}
	return &a, nil
}

// GetRecentAttendance returns the player's most recent attendance records, newest first
func (r *AttendanceRepository) GetRecentAttendance(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error) {
	uid, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return queryRecentAttendance(ctx, r.db, uid.String(), limit)
}
