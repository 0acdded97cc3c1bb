package sidequest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

const testPlayerID = "11111111-1111-1111-1111-111111111111"

type fakeLeveling struct {
	grants    int
	lastBase  int
	lastActiv domain.ActivityCategory
	result    *domain.LedgerResult
	err       error
}

func (f *fakeLeveling) GrantExp(ctx context.Context, playerID string, amount int, activity domain.ActivityCategory, description string) (*domain.LedgerResult, error) {
	f.grants++
	f.lastBase = amount
	f.lastActiv = activity
	return f.result, f.err
}

func (f *fakeLeveling) GrantExpInTx(ctx context.Context, tx repository.GameTx, playerID string, amount int, activity domain.ActivityCategory, description string) (*domain.LedgerResult, error) {
	return f.result, f.err
}

func (f *fakeLeveling) PublishResultEvents(ctx context.Context, activity domain.ActivityCategory, result *domain.LedgerResult) {
}

func (f *fakeLeveling) GetProgress(ctx context.Context, playerID string) (*leveling.Progress, error) {
	return nil, nil
}

func (f *fakeLeveling) GetExpLog(ctx context.Context, playerID string, limit int) ([]domain.ExpLogEntry, error) {
	return nil, nil
}

func TestCreate(t *testing.T) {
	quests := new(repository.MockSidequest)
	svc := NewService(quests, nil, nil)

	quests.On("CreateSidequest", mock.Anything, mock.MatchedBy(func(q *domain.Sidequest) bool {
		return q.Title == "essay 3" && q.Status == domain.SidequestActive
	})).Return(nil)

	quest, err := svc.Create(context.Background(), "essay 3", "argue a position", time.Now().Add(7*24*time.Hour), 100, 40)

	require.NoError(t, err)
	assert.Equal(t, domain.SidequestActive, quest.Status)
	assert.Equal(t, 100, quest.ExpReward)
	assert.Equal(t, 40, quest.LateExpReward)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(new(repository.MockSidequest), nil, nil)

	_, err := svc.Create(context.Background(), "", "untitled", time.Now(), 100, 40)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), "essay", "bad reward", time.Now(), -1, 40)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit(t *testing.T) {
	quests := new(repository.MockSidequest)
	players := new(repository.MockGame)
	svc := NewService(quests, players, nil)

	quests.On("GetSidequest", mock.Anything, int64(2)).Return(&domain.Sidequest{
		ID: 2, Title: "essay 3", Status: domain.SidequestActive, DueDate: time.Now().Add(time.Hour),
	}, nil)
	players.On("GetPlayerByID", mock.Anything, testPlayerID).Return(&domain.Player{
		ID: testPlayerID, HonorPoints: 400,
	}, nil)
	quests.On("InsertSubmission", mock.Anything, mock.AnythingOfType("*domain.SidequestSubmission")).Return(nil)

	sub, err := svc.Submit(context.Background(), testPlayerID, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(2), sub.SidequestID)
	assert.Nil(t, sub.Grade)
	quests.AssertExpectations(t)
}

func TestSubmit_ClosedQuest(t *testing.T) {
	quests := new(repository.MockSidequest)
	svc := NewService(quests, nil, nil)

	quests.On("GetSidequest", mock.Anything, int64(2)).Return(&domain.Sidequest{
		ID: 2, Status: domain.SidequestClosed,
	}, nil)

	_, err := svc.Submit(context.Background(), testPlayerID, 2)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_PrivilegeDenied(t *testing.T) {
	quests := new(repository.MockSidequest)
	players := new(repository.MockGame)
	svc := NewService(quests, players, nil)

	quests.On("GetSidequest", mock.Anything, int64(2)).Return(&domain.Sidequest{
		ID: 2, Status: domain.SidequestActive,
	}, nil)
	// Outcast standing loses sidequest submission
	players.On("GetPlayerByID", mock.Anything, testPlayerID).Return(&domain.Player{
		ID: testPlayerID, HonorPoints: 20,
	}, nil)

	_, err := svc.Submit(context.Background(), testPlayerID, 2)

	assert.ErrorIs(t, err, domain.ErrPrivilegeDenied)
	quests.AssertNotCalled(t, "InsertSubmission", mock.Anything, mock.Anything)
}

func TestGrade_OnTime(t *testing.T) {
	quests := new(repository.MockSidequest)
	lvl := &fakeLeveling{result: &domain.LedgerResult{PlayerID: testPlayerID, BaseAmount: 100, ActualAmount: 100}}
	svc := NewService(quests, nil, lvl)

	due := time.Now().Add(time.Hour)
	quests.On("GetSubmission", mock.Anything, int64(8)).Return(&domain.SidequestSubmission{
		ID: 8, PlayerID: testPlayerID, SidequestID: 2, SubmittedAt: time.Now(),
	}, nil)
	quests.On("GetSidequest", mock.Anything, int64(2)).Return(&domain.Sidequest{
		ID: 2, Title: "essay 3", DueDate: due, ExpReward: 100, LateExpReward: 40, Status: domain.SidequestActive,
	}, nil)
	quests.On("UpdateSubmissionGrade", mock.Anything, int64(8), 85, 100, "good work").Return(nil)

	result, err := svc.Grade(context.Background(), 8, 85, "good work")

	require.NoError(t, err)
	assert.False(t, result.WasLate)
	assert.Equal(t, 1, lvl.grants)
	assert.Equal(t, 100, lvl.lastBase)
	assert.Equal(t, domain.ActivityAssignment, lvl.lastActiv)
	assert.Equal(t, 100, result.Submission.ExpEarned)
	require.NotNil(t, result.Submission.Grade)
	assert.Equal(t, 85, *result.Submission.Grade)
}

func TestGrade_LateUsesReducedReward(t *testing.T) {
	quests := new(repository.MockSidequest)
	lvl := &fakeLeveling{result: &domain.LedgerResult{PlayerID: testPlayerID, BaseAmount: 40, ActualAmount: 40}}
	svc := NewService(quests, nil, lvl)

	due := time.Now().Add(-24 * time.Hour)
	quests.On("GetSubmission", mock.Anything, int64(8)).Return(&domain.SidequestSubmission{
		ID: 8, PlayerID: testPlayerID, SidequestID: 2, SubmittedAt: time.Now(),
	}, nil)
	quests.On("GetSidequest", mock.Anything, int64(2)).Return(&domain.Sidequest{
		ID: 2, Title: "essay 3", DueDate: due, ExpReward: 100, LateExpReward: 40, Status: domain.SidequestActive,
	}, nil)
	quests.On("UpdateSubmissionGrade", mock.Anything, int64(8), 70, 40, "").Return(nil)

	result, err := svc.Grade(context.Background(), 8, 70, "")

	require.NoError(t, err)
	assert.True(t, result.WasLate)
	assert.Equal(t, 40, lvl.lastBase)
}

func TestGrade_RegradeNeverPaysTwice(t *testing.T) {
	quests := new(repository.MockSidequest)
	lvl := &fakeLeveling{}
	svc := NewService(quests, nil, lvl)

	prevGrade := 60
	quests.On("GetSubmission", mock.Anything, int64(8)).Return(&domain.SidequestSubmission{
		ID: 8, PlayerID: testPlayerID, SidequestID: 2, SubmittedAt: time.Now(),
		Grade: &prevGrade, ExpEarned: 100,
	}, nil)
	quests.On("GetSidequest", mock.Anything, int64(2)).Return(&domain.Sidequest{
		ID: 2, Title: "essay 3", DueDate: time.Now().Add(time.Hour), ExpReward: 100, Status: domain.SidequestActive,
	}, nil)
	quests.On("UpdateSubmissionGrade", mock.Anything, int64(8), 75, 100, "revised").Return(nil)

	result, err := svc.Grade(context.Background(), 8, 75, "revised")

	require.NoError(t, err)
	assert.Equal(t, 0, lvl.grants)
	assert.Equal(t, 100, result.Submission.ExpEarned)
	assert.Nil(t, result.Ledger)
}

func TestGrade_OutOfRange(t *testing.T) {
	svc := NewService(new(repository.MockSidequest), nil, nil)

	_, err := svc.Grade(context.Background(), 8, 101, "")
	assert.ErrorIs(t, err, domain.ErrInvalidScore)

	_, err = svc.Grade(context.Background(), 8, -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidScore)
}
