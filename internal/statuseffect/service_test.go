package statuseffect

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

const testPlayerID = "11111111-1111-1111-1111-111111111111"

func TestListActive_FiltersExpired(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-time.Hour)
	repo.On("ListActiveStatusEffects", mock.Anything, testPlayerID).Return([]domain.StatusEffect{
		{ID: 1, EffectType: domain.EffectCurse, EndTime: &future, IsActive: true},
		{ID: 2, EffectType: domain.EffectWeakness, EndTime: &past, IsActive: true},
		{ID: 3, EffectType: domain.EffectSilence, IsActive: true},
	}, nil)

	live, err := svc.ListActive(context.Background(), testPlayerID)

	require.NoError(t, err)
	require.Len(t, live, 2)
	assert.Equal(t, int64(1), live[0].ID)
	// No end time means the effect holds until resolved
	assert.Equal(t, int64(3), live[1].ID)
}

func TestApply(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("GetPlayerByID", mock.Anything, testPlayerID).Return(&domain.Player{ID: testPlayerID}, nil)

	tx := new(repository.MockGameTx)
	tx.On("InsertStatusEffect", mock.Anything, mock.AnythingOfType("*domain.StatusEffect")).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	effect, err := svc.Apply(context.Background(), testPlayerID, domain.EffectSilence, "disruptive behavior", 5)

	require.NoError(t, err)
	assert.Equal(t, 0.90, effect.ExpMultiplier)
	assert.True(t, effect.IsActive)
	require.NotNil(t, effect.EndTime)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 5), *effect.EndTime, time.Minute)
	assert.Nil(t, effect.PunishmentID)
	tx.AssertExpectations(t)
}

func TestApply_NoDurationMeansOpenEnded(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("GetPlayerByID", mock.Anything, testPlayerID).Return(&domain.Player{ID: testPlayerID}, nil)

	tx := new(repository.MockGameTx)
	tx.On("InsertStatusEffect", mock.Anything, mock.AnythingOfType("*domain.StatusEffect")).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	effect, err := svc.Apply(context.Background(), testPlayerID, domain.EffectCurse, "manual curse", 0)

	require.NoError(t, err)
	assert.Nil(t, effect.EndTime)
}

func TestApply_InvalidEffectType(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	_, err := svc.Apply(context.Background(), testPlayerID, "blessing", "nope", 1)

	assert.ErrorIs(t, err, domain.ErrInvalidEffect)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestApply_NegativeDuration(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	_, err := svc.Apply(context.Background(), testPlayerID, domain.EffectCurse, "nope", -1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_PlayerNotFound(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("GetPlayerByID", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound)

	_, err := svc.Apply(context.Background(), testPlayerID, domain.EffectCurse, "nope", 1)

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestRemove(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	tx := new(repository.MockGameTx)
	tx.On("DeactivateStatusEffect", mock.Anything, int64(9)).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)

	err := svc.Remove(context.Background(), testPlayerID, 9)

	assert.NoError(t, err)
	tx.AssertExpectations(t)
}

func TestExpireStale(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("DeactivateExpiredEffects", mock.Anything).Return(int64(4), nil)

	count, err := svc.ExpireStale(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
