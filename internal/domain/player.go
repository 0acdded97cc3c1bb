package domain

import "time"

// Player represents a registered student in the gamification system
type Player struct {
	ID           string    `json:"player_id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	CurrentExp   int       `json:"current_exp"`
	TotalExp     int       `json:"total_exp"`
	CurrentLevel int       `json:"current_level"`
	HonorPoints  int       `json:"honor_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MaxHonorPoints is the cap for the honor points balance
const MaxHonorPoints = 1000

// DefaultHonorPoints is the starting honor balance for a new player
const DefaultHonorPoints = 100
