package domain

import "time"

// BossBattle records a scored exam event for a player. FinalScore is derived
// from BaseScore and the player's level at battle time.
type BossBattle struct {
	ID           int64     `json:"id"`
	PlayerID     string    `json:"player_id"`
	BossType     BossType  `json:"boss_type"`
	Name         string    `json:"name"`
	BaseScore    int       `json:"base_score"`
	BonusApplied int       `json:"bonus_applied"`
	FinalScore   int       `json:"final_score"`
	BattleDate   time.Time `json:"battle_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// BossScoreResult carries a bonus-adjusted final exam score
type BossScoreResult struct {
	BaseScore    int `json:"base_score"`
	BonusApplied int `json:"bonus_applied"`
	FinalScore   int `json:"final_score"`
}
