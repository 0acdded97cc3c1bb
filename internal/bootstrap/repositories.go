package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakandito/ClassQuest_Go/internal/database/postgres"
	"github.com/rakandito/ClassQuest_Go/internal/eventlog"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Game       repository.Game
	Attendance repository.Attendance
	Boss       repository.Boss
	Sidequest  repository.Sidequest
	EventLog   eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Game:       postgres.NewGameRepository(dbPool),
		Attendance: postgres.NewAttendanceRepository(dbPool),
		Boss:       postgres.NewBossRepository(dbPool),
		Sidequest:  postgres.NewSidequestRepository(dbPool),
		EventLog:   postgres.NewEventLogRepository(dbPool),
	}
}
