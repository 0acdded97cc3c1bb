package leveling_bench

import (
	"context"
	"testing"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

const benchPlayerID = "5f0c9c4e-0b1a-4f09-9a4a-111111111111"

var benchThresholds = []domain.LevelThreshold{
	{Level: 1, ExpRequired: 0},
	{Level: 2, ExpRequired: 100},
	{Level: 3, ExpRequired: 250},
	{Level: 4, ExpRequired: 450},
	{Level: 5, ExpRequired: 700},
}

type StubRepository struct{}

func (s *StubRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	return freshPlayer(), nil
}

func (s *StubRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return freshPlayer(), nil
}

func (s *StubRepository) CreatePlayer(ctx context.Context, player *domain.Player) error { return nil }

func (s *StubRepository) ListPlayerIDs(ctx context.Context) ([]string, error) {
	return []string{benchPlayerID}, nil
}

func (s *StubRepository) ListTopPlayers(ctx context.Context, limit int) ([]domain.Player, error) {
	return nil, nil
}

func (s *StubRepository) GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error) {
	return benchThresholds, nil
}

func (s *StubRepository) ListExpLog(ctx context.Context, playerID string, limit int) ([]domain.ExpLogEntry, error) {
	return nil, nil
}

func (s *StubRepository) GetPunishment(ctx context.Context, id int64) (*domain.PunishmentRecord, error) {
	return nil, nil
}

func (s *StubRepository) ListPunishments(ctx context.Context, playerID string) ([]domain.PunishmentRecord, error) {
	return nil, nil
}

func (s *StubRepository) ListActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error) {
	return nil, nil
}

func (s *StubRepository) DeactivateExpiredEffects(ctx context.Context) (int64, error) { return 0, nil }

func (s *StubRepository) BeginTx(ctx context.Context) (repository.GameTx, error) {
	return &StubTx{}, nil
}

type StubTx struct{}

func (t *StubTx) Commit(ctx context.Context) error   { return nil }
func (t *StubTx) Rollback(ctx context.Context) error { return nil }

func (t *StubTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	// Return a fresh object to simulate a db fetch and allow state mutations safely
	return freshPlayer(), nil
}

func (t *StubTx) UpdatePlayerProgress(ctx context.Context, player *domain.Player) error { return nil }

func (t *StubTx) UpdatePlayerHonor(ctx context.Context, playerID string, honorPoints int) error {
	return nil
}

func (t *StubTx) InsertExpLog(ctx context.Context, entry *domain.ExpLogEntry) error { return nil }

func (t *StubTx) GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error) {
	return benchThresholds, nil
}

func (t *StubTx) GetActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error) {
	return nil, nil
}

func (t *StubTx) InsertStatusEffect(ctx context.Context, effect *domain.StatusEffect) error {
	return nil
}

func (t *StubTx) DeactivateStatusEffect(ctx context.Context, effectID int64) error { return nil }

func (t *StubTx) DeactivateEffectsForPunishment(ctx context.Context, punishmentID int64) (int64, error) {
	return 0, nil
}

func (t *StubTx) InsertPunishment(ctx context.Context, record *domain.PunishmentRecord) error {
	return nil
}

func (t *StubTx) GetPunishmentForUpdate(ctx context.Context, id int64) (*domain.PunishmentRecord, error) {
	return nil, nil
}

func (t *StubTx) GetUnresolvedPunishment(ctx context.Context, playerID string, category domain.PunishmentCategory) (*domain.PunishmentRecord, error) {
	return nil, nil
}

func (t *StubTx) MarkPunishmentResolved(ctx context.Context, id int64) error { return nil }

func (t *StubTx) GetRecentAttendance(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error) {
	return nil, nil
}

func freshPlayer() *domain.Player {
	return &domain.Player{
		ID:           benchPlayerID,
		Username:     "bench",
		CurrentExp:   50,
		TotalExp:     150,
		CurrentLevel: 2,
		HonorPoints:  100,
	}
}

// --- Benchmarks ---

func BenchmarkGrantExp(b *testing.B) {
	svc := leveling.NewService(&StubRepository{}, event.NewMemoryBus())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GrantExp(ctx, benchPlayerID, 25, domain.ActivityParticipation, "bench grant"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGrantExp_LevelUp(b *testing.B) {
	svc := leveling.NewService(&StubRepository{}, event.NewMemoryBus())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// 150 + 300 crosses the level 4 threshold
		if _, err := svc.GrantExp(ctx, benchPlayerID, 300, domain.ActivityParticipation, "bench level up"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetProgress(b *testing.B) {
	svc := leveling.NewService(&StubRepository{}, event.NewMemoryBus())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GetProgress(ctx, benchPlayerID); err != nil {
			b.Fatal(err)
		}
	}
}
