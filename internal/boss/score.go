package boss

import "github.com/rakandito/ClassQuest_Go/internal/domain"

// MaxScore caps the bonus-adjusted final exam score
const MaxScore = 100

// LevelBonus returns the flat score bonus for a player level
func LevelBonus(level int) int {
	switch {
	case level <= 5:
		return 0
	case level <= 10:
		return 5
	case level <= 15:
		return 10
	default:
		return 15
	}
}

// FinalScore applies the level bonus to a base score, capped at MaxScore.
// Base score range validation happens at the boundary, not here.
func FinalScore(baseScore, playerLevel int) domain.BossScoreResult {
	bonus := LevelBonus(playerLevel)
	final := baseScore + bonus
	if final > MaxScore {
		final = MaxScore
	}
	return domain.BossScoreResult{
		BaseScore:    baseScore,
		BonusApplied: bonus,
		FinalScore:   final,
	}
}
