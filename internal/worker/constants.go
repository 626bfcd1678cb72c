package worker

// Log messages for pool lifecycle and job failures
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStarted     = "Worker pool started"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// DefaultQueueSize is used when a pool is created with a non-positive queue size.
const DefaultQueueSize = 64
