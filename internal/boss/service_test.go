package boss

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

const testPlayerID = "11111111-1111-1111-1111-111111111111"

func newTestService(players *repository.MockGame, battles *repository.MockBoss) (Service, *event.MemoryBus) {
	bus := event.NewMemoryBus()
	return NewService(players, battles, bus), bus
}

func TestRecordBattle(t *testing.T) {
	players := new(repository.MockGame)
	battles := new(repository.MockBoss)
	svc, bus := newTestService(players, battles)

	received := make(chan event.Event, 1)
	bus.Subscribe(event.BossBattleRecorded, func(ctx context.Context, e event.Event) error {
		received <- e
		return nil
	})

	players.On("GetPlayerByID", mock.Anything, testPlayerID).Return(&domain.Player{
		ID:           testPlayerID,
		CurrentLevel: 7,
		HonorPoints:  400,
	}, nil)
	battles.On("InsertBossBattle", mock.Anything, mock.AnythingOfType("*domain.BossBattle")).Return(nil)

	battle, err := svc.RecordBattle(context.Background(), testPlayerID, domain.BossMid, "midterm exam", 80, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, 80, battle.BaseScore)
	assert.Equal(t, 5, battle.BonusApplied)
	assert.Equal(t, 85, battle.FinalScore)
	assert.Len(t, received, 1)
	battles.AssertExpectations(t)
}

func TestRecordBattle_InvalidBossType(t *testing.T) {
	players := new(repository.MockGame)
	battles := new(repository.MockBoss)
	svc, _ := newTestService(players, battles)

	_, err := svc.RecordBattle(context.Background(), testPlayerID, "raid_boss", "exam", 80, time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidBossType)
	battles.AssertNotCalled(t, "InsertBossBattle", mock.Anything, mock.Anything)
}

func TestRecordBattle_ScoreOutOfRange(t *testing.T) {
	players := new(repository.MockGame)
	battles := new(repository.MockBoss)
	svc, _ := newTestService(players, battles)

	_, err := svc.RecordBattle(context.Background(), testPlayerID, domain.BossMini, "quiz", 101, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidScore)

	_, err = svc.RecordBattle(context.Background(), testPlayerID, domain.BossMini, "quiz", -1, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidScore)
}

func TestRecordBattle_PrivilegeDenied(t *testing.T) {
	players := new(repository.MockGame)
	battles := new(repository.MockBoss)
	svc, _ := newTestService(players, battles)

	// Disgraced standing loses boss participation
	players.On("GetPlayerByID", mock.Anything, testPlayerID).Return(&domain.Player{
		ID:           testPlayerID,
		CurrentLevel: 7,
		HonorPoints:  120,
	}, nil)

	_, err := svc.RecordBattle(context.Background(), testPlayerID, domain.BossLast, "final exam", 90, time.Now())

	assert.ErrorIs(t, err, domain.ErrPrivilegeDenied)
	battles.AssertNotCalled(t, "InsertBossBattle", mock.Anything, mock.Anything)
}

func TestPreview(t *testing.T) {
	players := new(repository.MockGame)
	battles := new(repository.MockBoss)
	svc, _ := newTestService(players, battles)

	players.On("GetPlayerByID", mock.Anything, testPlayerID).Return(&domain.Player{
		ID:           testPlayerID,
		CurrentLevel: 16,
		HonorPoints:  100,
	}, nil)

	// Preview never checks privileges or stores anything
	result, err := svc.Preview(context.Background(), testPlayerID, 92)

	assert.NoError(t, err)
	assert.Equal(t, 15, result.BonusApplied)
	assert.Equal(t, MaxScore, result.FinalScore)
	battles.AssertNotCalled(t, "InsertBossBattle", mock.Anything, mock.Anything)
}

func TestListBattles(t *testing.T) {
	players := new(repository.MockGame)
	battles := new(repository.MockBoss)
	svc, _ := newTestService(players, battles)

	battles.On("ListBossBattles", mock.Anything, testPlayerID).Return([]domain.BossBattle{
		{PlayerID: testPlayerID, BossType: domain.BossMini, FinalScore: 75},
	}, nil)

	list, err := svc.ListBattles(context.Background(), testPlayerID)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
