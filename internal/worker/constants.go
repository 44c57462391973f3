package worker

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, dropping job"
	LogMsgAutosaveFailed  = "Autosave failed"
)

// Default pool sizing. One worker keeps simulation steps strictly ordered.
const (
	DefaultWorkers   = 1
	DefaultQueueSize = 4
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
