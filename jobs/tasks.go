package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLowStockScan reports products at or below the stock threshold.
	TaskLowStockScan = "inventory:lowstock_scan"
	// TaskHistoryWarmup pre-populates the history view cache.
	TaskHistoryWarmup = "history:warmup"
)

// LowStockScanPayload parameterises a low-stock scan run.
type LowStockScanPayload struct {
	Threshold int `json:"threshold"`
}

// NewLowStockScanTask constructs an Asynq task.
func NewLowStockScanTask(payload LowStockScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, data), nil
}

// NewHistoryWarmupTask constructs an Asynq task.
func NewHistoryWarmupTask() (*asynq.Task, error) {
	return asynq.NewTask(TaskHistoryWarmup, nil), nil
}
