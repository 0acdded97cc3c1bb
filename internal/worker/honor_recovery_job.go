package worker

import (
	"context"

	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// HonorRecoveryJob grants every player a small honor regain per run. The
// scheduler enqueues it at the configured recovery interval.
type HonorRecoveryJob struct {
	honorService honor.Service
	amount       int
}

// NewHonorRecoveryJob creates a new honor recovery job
func NewHonorRecoveryJob(honorService honor.Service, amount int) *HonorRecoveryJob {
	return &HonorRecoveryJob{
		honorService: honorService,
		amount:       amount,
	}
}

// Process runs one recovery sweep across all players
func (j *HonorRecoveryJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgHonorRecoveryStarting, "amount", j.amount)

	affected, err := j.honorService.RecoverAll(ctx, j.amount)
	if err != nil {
		log.Error(LogMsgHonorRecoveryFailed, "error", err)
		return err
	}

	log.Info(LogMsgHonorRecoveryCompleted, "players_affected", affected)
	return nil
}
