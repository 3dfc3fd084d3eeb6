package ports

import (
	"context"
	"time"
)

// ActivityRecord is one line of the agents' action feed.
type ActivityRecord struct {
	AgentName  string    `json:"agentName"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ActivityHistoryRepository stores the action feed. It is write-mostly: the
// decision core never reads it back; ListRecent serves the activity endpoint.
type ActivityHistoryRepository interface {
	Append(ctx context.Context, records []ActivityRecord) error
	// ListRecent returns up to limit records, newest first. An empty history
	// yields ErrNotFound.
	ListRecent(ctx context.Context, limit int) ([]ActivityRecord, error)
}
