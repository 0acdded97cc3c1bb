package punishment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

const testPlayerID = "11111111-1111-1111-1111-111111111111"

var testThresholds = []domain.LevelThreshold{
	{Level: 1, ExpRequired: 0},
	{Level: 2, ExpRequired: 100},
	{Level: 3, ExpRequired: 250},
	{Level: 4, ExpRequired: 450},
}

func newTestService(repo *repository.MockGame) (Service, *event.MemoryBus) {
	bus := event.NewMemoryBus()
	lvl := leveling.NewService(repo, bus)
	return NewService(repo, lvl, bus), bus
}

func TestApplyPlagiarism_Major(t *testing.T) {
	repo := new(repository.MockGame)
	svc, bus := newTestService(repo)

	var got []event.Type
	record := func(ctx context.Context, e event.Event) error {
		got = append(got, e.Type)
		return nil
	}
	bus.Subscribe(event.PunishmentApplied, record)
	bus.Subscribe(event.ExpGranted, record)

	player := &domain.Player{
		ID:           testPlayerID,
		TotalExp:     500,
		CurrentExp:   50,
		CurrentLevel: 2,
		HonorPoints:  100,
	}

	tx := new(repository.MockGameTx)
	tx.On("GetPlayerForUpdate", mock.Anything, testPlayerID).Return(player, nil)
	tx.On("InsertPunishment", mock.Anything, mock.AnythingOfType("*domain.PunishmentRecord")).Return(nil)
	tx.On("GetLevelThresholds", mock.Anything).Return(testThresholds, nil)
	tx.On("GetActiveStatusEffects", mock.Anything, testPlayerID).Return(nil, nil)
	tx.On("InsertExpLog", mock.Anything, mock.AnythingOfType("*domain.ExpLogEntry")).Return(nil)
	tx.On("UpdatePlayerProgress", mock.Anything, player).Return(nil)
	tx.On("UpdatePlayerHonor", mock.Anything, testPlayerID, 80).Return(nil)
	tx.On("InsertStatusEffect", mock.Anything, mock.MatchedBy(func(e *domain.StatusEffect) bool {
		return e.EffectType == domain.EffectCurse && e.PunishmentID != nil && e.EndTime != nil
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	result, err := svc.ApplyPlagiarism(context.Background(), testPlayerID, domain.PlagiarismMajor,
		map[string]string{"assignment": "essay 2"}, "teacher-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PunishmentPlagiarism, result.Record.Category)
	assert.Equal(t, domain.SeverityLabel("major"), result.Record.Severity)

	// Disgraced standing scales the EXP penalty, honor loss stays flat
	require.NotNil(t, result.Ledger)
	assert.Equal(t, -270, result.Ledger.ActualAmount)
	assert.Equal(t, 80, result.NewHonor)

	assert.Equal(t, []event.Type{event.PunishmentApplied, event.ExpGranted}, got)
	tx.AssertExpectations(t)
}

func TestApplyPlagiarism_MinorHasNoEffect(t *testing.T) {
	repo := new(repository.MockGame)
	svc, _ := newTestService(repo)

	player := &domain.Player{
		ID:           testPlayerID,
		TotalExp:     500,
		CurrentLevel: 3,
		HonorPoints:  400,
	}

	tx := new(repository.MockGameTx)
	tx.On("GetPlayerForUpdate", mock.Anything, testPlayerID).Return(player, nil)
	tx.On("InsertPunishment", mock.Anything, mock.AnythingOfType("*domain.PunishmentRecord")).Return(nil)
	tx.On("GetLevelThresholds", mock.Anything).Return(testThresholds, nil)
	tx.On("GetActiveStatusEffects", mock.Anything, testPlayerID).Return(nil, nil)
	tx.On("InsertExpLog", mock.Anything, mock.AnythingOfType("*domain.ExpLogEntry")).Return(nil)
	tx.On("UpdatePlayerProgress", mock.Anything, player).Return(nil)
	tx.On("UpdatePlayerHonor", mock.Anything, testPlayerID, 390).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	result, err := svc.ApplyPlagiarism(context.Background(), testPlayerID, domain.PlagiarismMinor, nil, "teacher-1")

	require.NoError(t, err)
	assert.Equal(t, -100, result.Ledger.ActualAmount)
	tx.AssertNotCalled(t, "InsertStatusEffect", mock.Anything, mock.Anything)
}

func TestApplyCheating_HonorClampedAtZero(t *testing.T) {
	repo := new(repository.MockGame)
	svc, _ := newTestService(repo)

	player := &domain.Player{
		ID:           testPlayerID,
		TotalExp:     800,
		CurrentLevel: 4,
		HonorPoints:  30,
	}

	tx := new(repository.MockGameTx)
	tx.On("GetPlayerForUpdate", mock.Anything, testPlayerID).Return(player, nil)
	tx.On("InsertPunishment", mock.Anything, mock.AnythingOfType("*domain.PunishmentRecord")).Return(nil)
	tx.On("GetLevelThresholds", mock.Anything).Return(testThresholds, nil)
	tx.On("GetActiveStatusEffects", mock.Anything, testPlayerID).Return(nil, nil)
	tx.On("InsertExpLog", mock.Anything, mock.AnythingOfType("*domain.ExpLogEntry")).Return(nil)
	tx.On("UpdatePlayerProgress", mock.Anything, player).Return(nil)
	tx.On("UpdatePlayerHonor", mock.Anything, testPlayerID, 0).Return(nil)
	tx.On("InsertStatusEffect", mock.Anything, mock.MatchedBy(func(e *domain.StatusEffect) bool {
		return e.EffectType == domain.EffectCurse
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	result, err := svc.ApplyCheating(context.Background(), testPlayerID, domain.BossLast, "teacher-1")

	require.NoError(t, err)
	// 40 honor loss against a balance of 30 bottoms out at zero
	assert.Equal(t, 0, result.NewHonor)
	// Outcast standing shrinks the 600 penalty to 300
	assert.Equal(t, -300, result.Ledger.ActualAmount)
	assert.Equal(t, domain.SeverityLabel("major"), result.Record.Severity)
}

func TestApplyDirect_Validation(t *testing.T) {
	repo := new(repository.MockGame)
	svc, _ := newTestService(repo)

	bad := domain.EffectType("blessing")
	_, err := svc.ApplyDirect(context.Background(), DirectRequest{
		PlayerID:   testPlayerID,
		Category:   domain.PunishmentLateSubmission,
		Severity:   domain.SeverityMinor,
		EffectType: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEffect)

	_, err = svc.ApplyDirect(context.Background(), DirectRequest{
		PlayerID:   testPlayerID,
		Category:   domain.PunishmentLateSubmission,
		Severity:   domain.SeverityMinor,
		ExpPenalty: -10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckAndApplyAbsence_BelowThreshold(t *testing.T) {
	repo := new(repository.MockGame)
	svc, _ := newTestService(repo)

	tx := new(repository.MockGameTx)
	tx.On("GetPlayerForUpdate", mock.Anything, testPlayerID).Return(&domain.Player{ID: testPlayerID}, nil)
	tx.On("GetRecentAttendance", mock.Anything, testPlayerID, AbsenceThreshold).Return([]domain.Attendance{
		{PlayerID: testPlayerID, Attended: false},
		{PlayerID: testPlayerID, Attended: true},
		{PlayerID: testPlayerID, Attended: false},
	}, nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	record, created, err := svc.CheckAndApplyAbsence(context.Background(), testPlayerID, "system")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, record)
	tx.AssertNotCalled(t, "InsertPunishment", mock.Anything, mock.Anything)
}

func TestCheckAndApplyAbsence_ThresholdReached(t *testing.T) {
	repo := new(repository.MockGame)
	svc, _ := newTestService(repo)

	player := &domain.Player{
		ID:           testPlayerID,
		TotalExp:     300,
		CurrentLevel: 3,
		HonorPoints:  400,
	}
	misses := []domain.Attendance{
		{PlayerID: testPlayerID, Attended: false},
		{PlayerID: testPlayerID, Attended: false},
		{PlayerID: testPlayerID, Attended: false},
	}

	tx := new(repository.MockGameTx)
	tx.On("GetPlayerForUpdate", mock.Anything, testPlayerID).Return(player, nil)
	tx.On("GetRecentAttendance", mock.Anything, testPlayerID, AbsenceThreshold).Return(misses, nil)
	tx.On("GetUnresolvedPunishment", mock.Anything, testPlayerID, domain.PunishmentAbsence).Return(nil, nil)
	tx.On("InsertPunishment", mock.Anything, mock.AnythingOfType("*domain.PunishmentRecord")).Return(nil)
	tx.On("GetLevelThresholds", mock.Anything).Return(testThresholds, nil)
	tx.On("GetActiveStatusEffects", mock.Anything, testPlayerID).Return(nil, nil)
	tx.On("InsertExpLog", mock.Anything, mock.AnythingOfType("*domain.ExpLogEntry")).Return(nil)
	tx.On("UpdatePlayerProgress", mock.Anything, player).Return(nil)
	tx.On("UpdatePlayerHonor", mock.Anything, testPlayerID, 395).Return(nil)
	tx.On("InsertStatusEffect", mock.Anything, mock.MatchedBy(func(e *domain.StatusEffect) bool {
		return e.EffectType == domain.EffectFatigue
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	record, created, err := svc.CheckAndApplyAbsence(context.Background(), testPlayerID, "system")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.PunishmentAbsence, record.Category)
	assert.Equal(t, "3", record.Evidence["consecutive_absences"])
	tx.AssertExpectations(t)
}

func TestCheckAndApplyAbsence_Idempotent(t *testing.T) {
	repo := new(repository.MockGame)
	svc, _ := newTestService(repo)

	existing := &domain.PunishmentRecord{
		ID:       7,
		PlayerID: testPlayerID,
		Category: domain.PunishmentAbsence,
	}
	misses := []domain.Attendance{
		{Attended: false}, {Attended: false}, {Attended: false},
	}

	tx := new(repository.MockGameTx)
	tx.On("GetPlayerForUpdate", mock.Anything, testPlayerID).Return(&domain.Player{ID: testPlayerID}, nil)
	tx.On("GetRecentAttendance", mock.Anything, testPlayerID, AbsenceThreshold).Return(misses, nil)
	tx.On("GetUnresolvedPunishment", mock.Anything, testPlayerID, domain.PunishmentAbsence).Return(existing, nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	record, created, err := svc.CheckAndApplyAbsence(context.Background(), testPlayerID, "system")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(7), record.ID)
	tx.AssertNotCalled(t, "InsertPunishment", mock.Anything, mock.Anything)
}

func TestResolve(t *testing.T) {
	repo := new(repository.MockGame)
	svc, bus := newTestService(repo)

	received := make(chan event.Event, 1)
	bus.Subscribe(event.PunishmentResolved, func(ctx context.Context, e event.Event) error {
		received <- e
		return nil
	})

	tx := new(repository.MockGameTx)
	tx.On("GetPunishmentForUpdate", mock.Anything, int64(5)).Return(&domain.PunishmentRecord{
		ID:       5,
		PlayerID: testPlayerID,
		Category: domain.PunishmentPlagiarism,
		Resolved: false,
	}, nil)
	tx.On("MarkPunishmentResolved", mock.Anything, int64(5)).Return(nil)
	tx.On("DeactivateEffectsForPunishment", mock.Anything, int64(5)).Return(int64(1), nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	record, err := svc.Resolve(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, record.Resolved)
	assert.NotNil(t, record.ResolvedAt)
	assert.WithinDuration(t, time.Now(), *record.ResolvedAt, time.Minute)
	assert.Len(t, received, 1)
	tx.AssertExpectations(t)
}

func TestResolve_AlreadyResolved(t *testing.T) {
	repo := new(repository.MockGame)
	svc, _ := newTestService(repo)

	tx := new(repository.MockGameTx)
	tx.On("GetPunishmentForUpdate", mock.Anything, int64(5)).Return(&domain.PunishmentRecord{
		ID:       5,
		PlayerID: testPlayerID,
		Resolved: true,
	}, nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	_, err := svc.Resolve(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	tx.AssertNotCalled(t, "MarkPunishmentResolved", mock.Anything, mock.Anything)
}
