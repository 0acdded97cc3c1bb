package domain

// LevelThreshold maps a level number to the cumulative total EXP required to
// reach it. Thresholds are seed data and strictly increasing with level.
type LevelThreshold struct {
	Level            int    `json:"level"`
	ExpRequired      int    `json:"exp_required"`
	BonusDescription string `json:"bonus_description,omitempty"`
}

// LevelForTotalExp returns the highest threshold level whose requirement is
// covered by totalExp. Thresholds must be sorted ascending by level.
// A level-1 threshold of 0 keeps the result at least 1 even when totalExp has
// gone negative from penalties.
func LevelForTotalExp(thresholds []LevelThreshold, totalExp int) (LevelThreshold, bool) {
	var best LevelThreshold
	found := false
	for _, t := range thresholds {
		if t.ExpRequired <= totalExp {
			best = t
			found = true
		}
	}
	return best, found
}

// HonorBonusForLevel returns the honor points granted when a player reaches
// the given level.
func HonorBonusForLevel(level int) int {
	switch {
	case level <= 5:
		return level * 10
	case level <= 10:
		return 50 + (level-5)*20
	default:
		return 150 + (level-10)*30
	}
}
