package inmemory

import (
	"sync"

	"retailsim/internal/domain/retail"
)

type Snapshot struct {
	StepTotal           uint64            `json:"step_total"`
	FulfillmentTotal    uint64            `json:"fulfillment_total"`
	OrderTotal          uint64            `json:"order_total"`
	ByFulfillmentStatus map[string]uint64 `json:"by_fulfillment_status"`
	ByOrderStatus       map[string]uint64 `json:"by_order_status"`
}

type Recorder struct {
	mu            sync.Mutex
	steps         uint64
	byFulfillment map[string]uint64
	byOrder       map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byFulfillment: map[string]uint64{},
		byOrder:       map[string]uint64{},
	}
}

func (r *Recorder) RecordStep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps++
}

func (r *Recorder) RecordFulfillment(status retail.FulfillmentStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byFulfillment[string(status)]++
}

func (r *Recorder) RecordOrder(status retail.OrderStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOrder[string(status)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		StepTotal:           r.steps,
		ByFulfillmentStatus: make(map[string]uint64, len(r.byFulfillment)),
		ByOrderStatus:       make(map[string]uint64, len(r.byOrder)),
	}
	for k, v := range r.byFulfillment {
		out.ByFulfillmentStatus[k] = v
		out.FulfillmentTotal += v
	}
	for k, v := range r.byOrder {
		out.ByOrderStatus[k] = v
		out.OrderTotal += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
