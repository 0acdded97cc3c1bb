package domain

import "time"

// DungeonStatus tracks a class session's lifecycle
type DungeonStatus string

// Dungeon statuses
const (
	DungeonPlanned   DungeonStatus = "planned"
	DungeonActive    DungeonStatus = "active"
	DungeonCompleted DungeonStatus = "completed"
)

// Dungeon is a scheduled class session tracked for attendance
type Dungeon struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	Status        DungeonStatus `json:"status"`
	ExpReward     int           `json:"exp_reward"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Attendance records whether a player attended a dungeon session.
// One record per player per dungeon.
type Attendance struct {
	ID        int64     `json:"id"`
	PlayerID  string    `json:"player_id"`
	DungeonID int64     `json:"dungeon_id"`
	Attended  bool      `json:"attended"`
	ExpEarned int       `json:"exp_earned"`
	CreatedAt time.Time `json:"created_at"`
}
