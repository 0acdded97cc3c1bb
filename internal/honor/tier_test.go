package honor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		wantTier string
		wantExp  float64
	}{
		{"exalted at cap", 1000, "exalted", 1.2},
		{"exalted boundary", 800, "exalted", 1.2},
		{"honored below exalted", 799, "honored", 1.1},
		{"honored boundary", 600, "honored", 1.1},
		{"respected boundary", 400, "respected", 1.0},
		{"neutral boundary", 200, "neutral", 0.95},
		{"disgraced boundary", 100, "disgraced", 0.9},
		{"shamed boundary", 50, "shamed", 0.8},
		{"outcast below shamed", 49, "outcast", 0.5},
		{"outcast at zero", 0, "outcast", 0.5},
		{"outcast negative", -10, "outcast", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := TierFor(tt.points)
			assert.Equal(t, tt.wantTier, tier.Name)
			assert.Equal(t, tt.wantExp, tier.ExpBonus)
		})
	}
}

func TestTierFor_Privileges(t *testing.T) {
	// Boss participation is the first privilege lost, sidequests the last
	disgraced := TierFor(100)
	assert.True(t, disgraced.CanSubmitSidequest)
	assert.True(t, disgraced.CanJoinDungeon)
	assert.False(t, disgraced.CanParticipateBoss)

	shamed := TierFor(50)
	assert.True(t, shamed.CanSubmitSidequest)
	assert.False(t, shamed.CanJoinDungeon)
	assert.False(t, shamed.CanParticipateBoss)

	outcast := TierFor(0)
	assert.False(t, outcast.CanSubmitSidequest)
	assert.False(t, outcast.CanJoinDungeon)
	assert.False(t, outcast.CanParticipateBoss)

	neutral := TierFor(250)
	assert.True(t, neutral.CanSubmitSidequest)
	assert.True(t, neutral.CanJoinDungeon)
	assert.True(t, neutral.CanParticipateBoss)
}

func TestPrivilegesFor(t *testing.T) {
	player := &domain.Player{
		ID:          "11111111-1111-1111-1111-111111111111",
		HonorPoints: 650,
	}

	p := PrivilegesFor(player)

	assert.Equal(t, 650, p.HonorPoints)
	assert.Equal(t, "honored", p.HonorTier)
	assert.Equal(t, 1.1, p.ExpMultiplierBonus)
	assert.True(t, p.CanParticipateBoss)
}
