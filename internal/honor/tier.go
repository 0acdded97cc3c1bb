package honor

import "github.com/rakandito/ClassQuest_Go/internal/domain"

// Tier buckets a player's honor balance into a reputation standing.
// Standing gates activity privileges and scales all ledger grants.
type Tier struct {
	Name               string  `json:"name"`
	MinPoints          int     `json:"min_points"`
	ExpBonus           float64 `json:"exp_bonus"`
	CanSubmitSidequest bool    `json:"can_submit_sidequest"`
	CanJoinDungeon     bool    `json:"can_join_dungeon"`
	CanParticipateBoss bool    `json:"can_participate_boss"`
}

// Tier table, highest standing first. TierFor picks the first row whose
// MinPoints is covered; the outcast row catches everything below 50.
var tiers = []Tier{
	{Name: "exalted", MinPoints: 800, ExpBonus: 1.2, CanSubmitSidequest: true, CanJoinDungeon: true, CanParticipateBoss: true},
	{Name: "honored", MinPoints: 600, ExpBonus: 1.1, CanSubmitSidequest: true, CanJoinDungeon: true, CanParticipateBoss: true},
	{Name: "respected", MinPoints: 400, ExpBonus: 1.0, CanSubmitSidequest: true, CanJoinDungeon: true, CanParticipateBoss: true},
	{Name: "neutral", MinPoints: 200, ExpBonus: 0.95, CanSubmitSidequest: true, CanJoinDungeon: true, CanParticipateBoss: true},
	{Name: "disgraced", MinPoints: 100, ExpBonus: 0.9, CanSubmitSidequest: true, CanJoinDungeon: true, CanParticipateBoss: false},
	{Name: "shamed", MinPoints: 50, ExpBonus: 0.8, CanSubmitSidequest: true, CanJoinDungeon: false, CanParticipateBoss: false},
	{Name: "outcast", MinPoints: 0, ExpBonus: 0.5, CanSubmitSidequest: false, CanJoinDungeon: false, CanParticipateBoss: false},
}

// TierFor returns the standing for an honor balance
func TierFor(honorPoints int) Tier {
	for _, t := range tiers {
		if honorPoints >= t.MinPoints {
			return t
		}
	}
	// Negative balances cannot occur (honor is clamped at zero), but the
	// outcast row is still the right answer if one slips through.
	return tiers[len(tiers)-1]
}

// Privileges describes what a player may currently do, for API consumers
type Privileges struct {
	HonorPoints        int     `json:"honor_points"`
	HonorTier          string  `json:"honor_tier"`
	ExpMultiplierBonus float64 `json:"exp_multiplier_bonus"`
	CanSubmitSidequest bool    `json:"can_submit_sidequest"`
	CanJoinDungeon     bool    `json:"can_join_dungeon"`
	CanParticipateBoss bool    `json:"can_participate_boss"`
}

// PrivilegesFor materializes the privilege view for a player
func PrivilegesFor(player *domain.Player) Privileges {
	t := TierFor(player.HonorPoints)
	return Privileges{
		HonorPoints:        player.HonorPoints,
		HonorTier:          t.Name,
		ExpMultiplierBonus: t.ExpBonus,
		CanSubmitSidequest: t.CanSubmitSidequest,
		CanJoinDungeon:     t.CanJoinDungeon,
		CanParticipateBoss: t.CanParticipateBoss,
	}
}
