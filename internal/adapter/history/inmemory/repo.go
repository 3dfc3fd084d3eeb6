package inmemory

import (
	"context"
	"sync"

	"retailsim/internal/app/ports"
)

const DefaultCapacity = 500

// Repo keeps the most recent activity records in a bounded ring. Oldest
// records fall off once the capacity is reached.
type Repo struct {
	mu       sync.Mutex
	capacity int
	records  []ports.ActivityRecord
}

func NewRepo(capacity int) *Repo {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Repo{capacity: capacity}
}

func (r *Repo) Append(_ context.Context, records []ports.ActivityRecord) error {
	if len(records) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, records...)
	if overflow := len(r.records) - r.capacity; overflow > 0 {
		r.records = append([]ports.ActivityRecord(nil), r.records[overflow:]...)
	}
	return nil
}

// ListRecent returns up to limit records, newest first. A non-positive limit
// returns everything retained.
func (r *Repo) ListRecent(_ context.Context, limit int) ([]ports.ActivityRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.records) == 0 {
		return nil, ports.ErrNotFound
	}
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	out := make([]ports.ActivityRecord, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
