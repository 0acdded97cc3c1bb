package statuseffect

import (
	"context"
	"fmt"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// CombinedMultiplier computes the product of a player's active effect
// multipliers inside the caller's transaction. Effects whose end time has
// passed are deactivated on the spot, so expiry persists atomically with
// whatever ledger write the caller is performing.
func CombinedMultiplier(ctx context.Context, tx repository.GameTx, playerID string, now time.Time) (float64, error) {
	effects, err := tx.GetActiveStatusEffects(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get active effects: %w", err)
	}

	multiplier := 1.0
	for i := range effects {
		e := &effects[i]
		if e.Expired(now) {
			if err := tx.DeactivateStatusEffect(ctx, e.ID); err != nil {
				return 0, fmt.Errorf("failed to expire effect %d: %w", e.ID, err)
			}
			continue
		}
		multiplier *= e.ExpMultiplier
	}
	return multiplier, nil
}
