package repository

import (
	"context"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// Sidequest defines the interface for sidequest and submission persistence
type Sidequest interface {
	CreateSidequest(ctx context.Context, quest *domain.Sidequest) error
	GetSidequest(ctx context.Context, id int64) (*domain.Sidequest, error)

	InsertSubmission(ctx context.Context, sub *domain.SidequestSubmission) error
	GetSubmission(ctx context.Context, id int64) (*domain.SidequestSubmission, error)
	UpdateSubmissionGrade(ctx context.Context, id int64, grade int, expEarned int, feedback string) error
}
