package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Honor Recovery Job
// ============================================================================

// Log messages for honor recovery runs
const (
	LogMsgHonorRecoveryStarting  = "Honor recovery starting"
	LogMsgHonorRecoveryCompleted = "Honor recovery completed"
	LogMsgHonorRecoveryFailed    = "Honor recovery failed"
)

// ============================================================================
// Log Messages - Effect Expiry Worker
// ============================================================================

// Log messages for the nightly effect expiry sweep
const (
	LogMsgEffectSweepStandby   = "Effect expiry sweep in standby"
	LogMsgEffectSweepApproach  = "Effect expiry sweep scheduled"
	LogMsgEffectSweepStarting  = "Effect expiry sweep starting"
	LogMsgEffectSweepCompleted = "Effect expiry sweep completed"
	LogMsgEffectSweepFailed    = "Effect expiry sweep failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
