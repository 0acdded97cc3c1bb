package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// MockGame is a mock implementation of the Game interface
type MockGame struct {
	mock.Mock
}

func (m *MockGame) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockGame) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockGame) CreatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockGame) ListPlayerIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGame) ListTopPlayers(ctx context.Context, limit int) ([]domain.Player, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockGame) GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LevelThreshold), args.Error(1)
}

func (m *MockGame) ListExpLog(ctx context.Context, playerID string, limit int) ([]domain.ExpLogEntry, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpLogEntry), args.Error(1)
}

func (m *MockGame) GetPunishment(ctx context.Context, id int64) (*domain.PunishmentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PunishmentRecord), args.Error(1)
}

func (m *MockGame) ListPunishments(ctx context.Context, playerID string) ([]domain.PunishmentRecord, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PunishmentRecord), args.Error(1)
}

func (m *MockGame) ListActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusEffect), args.Error(1)
}

func (m *MockGame) DeactivateExpiredEffects(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGame) BeginTx(ctx context.Context) (GameTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(GameTx), args.Error(1)
}

// MockGameTx is a mock implementation of the GameTx interface
type MockGameTx struct {
	mock.Mock
}

func (m *MockGameTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGameTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGameTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockGameTx) UpdatePlayerProgress(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockGameTx) UpdatePlayerHonor(ctx context.Context, playerID string, honorPoints int) error {
	args := m.Called(ctx, playerID, honorPoints)
	return args.Error(0)
}

func (m *MockGameTx) InsertExpLog(ctx context.Context, entry *domain.ExpLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGameTx) GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LevelThreshold), args.Error(1)
}

func (m *MockGameTx) GetActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusEffect), args.Error(1)
}

func (m *MockGameTx) InsertStatusEffect(ctx context.Context, effect *domain.StatusEffect) error {
	args := m.Called(ctx, effect)
	return args.Error(0)
}

func (m *MockGameTx) DeactivateStatusEffect(ctx context.Context, effectID int64) error {
	args := m.Called(ctx, effectID)
	return args.Error(0)
}

func (m *MockGameTx) DeactivateEffectsForPunishment(ctx context.Context, punishmentID int64) (int64, error) {
	args := m.Called(ctx, punishmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameTx) InsertPunishment(ctx context.Context, record *domain.PunishmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGameTx) GetPunishmentForUpdate(ctx context.Context, id int64) (*domain.PunishmentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PunishmentRecord), args.Error(1)
}

func (m *MockGameTx) GetUnresolvedPunishment(ctx context.Context, playerID string, category domain.PunishmentCategory) (*domain.PunishmentRecord, error) {
	args := m.Called(ctx, playerID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PunishmentRecord), args.Error(1)
}

func (m *MockGameTx) MarkPunishmentResolved(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameTx) GetRecentAttendance(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

// MockAttendance is a mock implementation of the Attendance interface
type MockAttendance struct {
	mock.Mock
}

func (m *MockAttendance) CreateDungeon(ctx context.Context, dungeon *domain.Dungeon) error {
	args := m.Called(ctx, dungeon)
	return args.Error(0)
}

func (m *MockAttendance) GetDungeon(ctx context.Context, id int64) (*domain.Dungeon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dungeon), args.Error(1)
}

func (m *MockAttendance) UpdateDungeonStatus(ctx context.Context, id int64, status domain.DungeonStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAttendance) InsertAttendance(ctx context.Context, att *domain.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockAttendance) UpdateAttendanceExp(ctx context.Context, id int64, expEarned int) error {
	args := m.Called(ctx, id, expEarned)
	return args.Error(0)
}

func (m *MockAttendance) GetAttendance(ctx context.Context, playerID string, dungeonID int64) (*domain.Attendance, error) {
	args := m.Called(ctx, playerID, dungeonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendance) GetRecentAttendance(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

// MockBoss is a mock implementation of the Boss interface
type MockBoss struct {
	mock.Mock
}

func (m *MockBoss) InsertBossBattle(ctx context.Context, battle *domain.BossBattle) error {
	args := m.Called(ctx, battle)
	return args.Error(0)
}

func (m *MockBoss) ListBossBattles(ctx context.Context, playerID string) ([]domain.BossBattle, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BossBattle), args.Error(1)
}

// MockSidequest is a mock implementation of the Sidequest interface
type MockSidequest struct {
	mock.Mock
}

func (m *MockSidequest) CreateSidequest(ctx context.Context, quest *domain.Sidequest) error {
	args := m.Called(ctx, quest)
	return args.Error(0)
}

func (m *MockSidequest) GetSidequest(ctx context.Context, id int64) (*domain.Sidequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sidequest), args.Error(1)
}

func (m *MockSidequest) InsertSubmission(ctx context.Context, sub *domain.SidequestSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSidequest) GetSubmission(ctx context.Context, id int64) (*domain.SidequestSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SidequestSubmission), args.Error(1)
}

func (m *MockSidequest) UpdateSubmissionGrade(ctx context.Context, id int64, grade int, expEarned int, feedback string) error {
	args := m.Called(ctx, id, grade, expEarned, feedback)
	return args.Error(0)
}
