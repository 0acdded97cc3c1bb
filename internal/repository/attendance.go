package repository

import (
	"context"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// Attendance defines the interface for dungeon and attendance persistence.
// Attendance history is read-only to the rules engine; records are written
// here by the attendance collaborator.
type Attendance interface {
	CreateDungeon(ctx context.Context, dungeon *domain.Dungeon) error
	GetDungeon(ctx context.Context, id int64) (*domain.Dungeon, error)
	UpdateDungeonStatus(ctx context.Context, id int64, status domain.DungeonStatus) error

	InsertAttendance(ctx context.Context, att *domain.Attendance) error
	UpdateAttendanceExp(ctx context.Context, id int64, expEarned int) error
	GetAttendance(ctx context.Context, playerID string, dungeonID int64) (*domain.Attendance, error)
	GetRecentAttendance(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error)
}
