package sidequest

import (
	"context"
	"fmt"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// MaxGrade is the upper bound for a submission grade
const MaxGrade = 100

// Service defines the interface for sidequest operations
type Service interface {
	Create(ctx context.Context, title, description string, dueDate time.Time, expReward, lateExpReward int) (*domain.Sidequest, error)
	Get(ctx context.Context, id int64) (*domain.Sidequest, error)
	Submit(ctx context.Context, playerID string, sidequestID int64) (*domain.SidequestSubmission, error)
	Grade(ctx context.Context, submissionID int64, grade int, feedback string) (*GradeResult, error)
}

// GradeResult describes a graded submission and the EXP it credited
type GradeResult struct {
	Submission *domain.SidequestSubmission `json:"submission"`
	Ledger     *domain.LedgerResult        `json:"ledger,omitempty"`
	WasLate    bool                        `json:"was_late"`
}

// service implements the Service interface
type service struct {
	quests   repository.Sidequest
	players  repository.Game
	leveling leveling.Service
	now      func() time.Time
}

// NewService creates a new sidequest service
func NewService(quests repository.Sidequest, players repository.Game, lvl leveling.Service) Service {
	return &service{
		quests:   quests,
		players:  players,
		leveling: lvl,
		now:      time.Now,
	}
}

// Create opens a new assignment
func (s *service) Create(ctx context.Context, title, description string, dueDate time.Time, expReward, lateExpReward int) (*domain.Sidequest, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: sidequest title is required", domain.ErrInvalidInput)
	}
	if expReward < 0 || lateExpReward < 0 {
		return nil, fmt.Errorf("%w: rewards must not be negative", domain.ErrInvalidInput)
	}

	quest := &domain.Sidequest{
		Title:         title,
		Description:   description,
		DueDate:       dueDate,
		ExpReward:     expReward,
		LateExpReward: lateExpReward,
		Status:        domain.SidequestActive,
	}
	if err := s.quests.CreateSidequest(ctx, quest); err != nil {
		return nil, err
	}
	return quest, nil
}

// Get returns a sidequest by ID
func (s *service) Get(ctx context.Context, id int64) (*domain.Sidequest, error) {
	return s.quests.GetSidequest(ctx, id)
}

// Submit records a player's submission. Submission is gated by honor tier;
// late submissions are accepted and resolved to the reduced reward at
// grading time.
func (s *service) Submit(ctx context.Context, playerID string, sidequestID int64) (*domain.SidequestSubmission, error) {
	quest, err := s.quests.GetSidequest(ctx, sidequestID)
	if err != nil {
		return nil, err
	}
	if quest.Status != domain.SidequestActive {
		return nil, fmt.Errorf("%w: sidequest %d is not accepting submissions", domain.ErrInvalidInput, sidequestID)
	}

	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !honor.TierFor(player.HonorPoints).CanSubmitSidequest {
		return nil, fmt.Errorf("%w: sidequest submission", domain.ErrPrivilegeDenied)
	}

	sub := &domain.SidequestSubmission{
		PlayerID:    playerID,
		SidequestID: sidequestID,
		SubmittedAt: s.now(),
	}
	if err := s.quests.InsertSubmission(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Grade assigns a grade and credits the reward through the ledger. EXP is
// awarded only on the first grading; re-grading changes the stored grade but
// never pays twice.
func (s *service) Grade(ctx context.Context, submissionID int64, grade int, feedback string) (*GradeResult, error) {
	log := logger.FromContext(ctx)

	if grade < 0 || grade > MaxGrade {
		return nil, fmt.Errorf("%w: grade %d", domain.ErrInvalidScore, grade)
	}

	sub, err := s.quests.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	quest, err := s.quests.GetSidequest(ctx, sub.SidequestID)
	if err != nil {
		return nil, err
	}

	firstGrading := sub.Grade == nil
	wasLate := sub.IsLate(quest)

	expEarned := sub.ExpEarned
	var ledger *domain.LedgerResult
	if firstGrading {
		reward := quest.ExpReward
		if wasLate {
			reward = quest.LateExpReward
		}
		if reward > 0 {
			ledger, err = s.leveling.GrantExp(ctx, sub.PlayerID, reward, domain.ActivityAssignment,
				fmt.Sprintf("Graded sidequest: %s (grade: %d)", quest.Title, grade))
			if err != nil {
				return nil, fmt.Errorf("failed to credit grading exp: %w", err)
			}
			expEarned = ledger.ActualAmount
		}
	}

	if err := s.quests.UpdateSubmissionGrade(ctx, submissionID, grade, expEarned, feedback); err != nil {
		return nil, err
	}

	sub.Grade = &grade
	sub.ExpEarned = expEarned
	sub.Feedback = feedback

	log.Info("Submission graded",
		"submission_id", submissionID,
		"player_id", sub.PlayerID,
		"grade", grade,
		"exp_earned", expEarned,
		"late", wasLate)
	return &GradeResult{Submission: sub, Ledger: ledger, WasLate: wasLate}, nil
}
