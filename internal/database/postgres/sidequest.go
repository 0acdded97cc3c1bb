package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// SidequestRepository implements sidequest and submission persistence for PostgreSQL
type SidequestRepository struct {
	db *pgxpool.Pool
}

// NewSidequestRepository creates a new SidequestRepository
func NewSidequestRepository(db *pgxpool.Pool) *SidequestRepository {
	return &SidequestRepository{db: db}
}

// CreateSidequest inserts an assignment
func (r *SidequestRepository) CreateSidequest(ctx context.Context, quest *domain.Sidequest) error {
	query := `
		INSERT INTO sidequests (title, description, due_date, exp_reward, late_exp_reward, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, quest.Title, quest.Description, quest.DueDate,
		quest.ExpReward, quest.LateExpReward, quest.Status).
		Scan(&quest.ID, &quest.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sidequest: %w", err)
	}
	return nil
}

// GetSidequest returns a sidequest by ID
func (r *SidequestRepository) GetSidequest(ctx context.Context, id int64) (*domain.Sidequest, error) {
	query := `
		SELECT id, title, description, due_date, exp_reward, late_exp_reward, status, created_at
		FROM sidequests WHERE id = $1
	`
	var q domain.Sidequest
	err := r.db.QueryRow(ctx, query, id).Scan(&q.ID, &q.Title, &q.Description,
		&q.DueDate, &q.ExpReward, &q.LateExpReward, &q.Status, &q.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: %d", domain.ErrSidequestNotFound, id)
		}
		return nil, fmt.Errorf("failed to get sidequest: %w", err)
	}
	return &q, nil
}

// InsertSubmission records a player's submission. The (player, sidequest)
// pair is unique.
func (r *SidequestRepository) InsertSubmission(ctx context.Context, sub *domain.SidequestSubmission) error {
	query := `
		INSERT INTO sidequest_submissions (player_id, sidequest_id, submitted_at, exp_earned)
		VALUES ($1, $2, $3, 0)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, sub.PlayerID, sub.SidequestID, sub.SubmittedAt).Scan(&sub.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sidequest %d", domain.ErrDuplicateSubmission, sub.SidequestID)
		}
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// GetSubmission returns a submission by ID
func (r *SidequestRepository) GetSubmission(ctx context.Context, id int64) (*domain.SidequestSubmission, error) {
	query := `
		SELECT id, player_id, sidequest_id, submitted_at, grade, exp_earned, COALESCE(feedback, '')
		FROM sidequest_submissions WHERE id = $1
	`
	var s domain.SidequestSubmission
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.PlayerID, &s.SidequestID,
		&s.SubmittedAt, &s.Grade, &s.ExpEarned, &s.Feedback)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: %d", domain.ErrSubmissionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &s, nil
}

// UpdateSubmissionGrade stores the grade, credited EXP, and feedback
func (r *SidequestRepository) UpdateSubmissionGrade(ctx context.Context, id int64, grade int, expEarned int, feedback string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sidequest_submissions SET grade = $1, exp_earned = $2, feedback = $3 WHERE id = $4`,
		grade, expEarned, feedback, id)
	if err != nil {
		return fmt.Errorf("failed to update submission grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrSubmissionNotFound, id)
	}
	return nil
}
