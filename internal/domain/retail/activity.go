package retail

import (
	"fmt"
	"time"
)

type AgentStatus string

const (
	StatusActive   AgentStatus = "active"
	StatusInactive AgentStatus = "inactive"
	StatusError    AgentStatus = "error"
)

// ActionObserver is notified after every recorded action. The server wires
// logging and activity history through it; nil means silent.
type ActionObserver func(agent, action string, at time.Time)

// ActivityLog carries the bookkeeping every agent shares: identity, status,
// and the last action it performed. Agents embed it by value.
type ActivityLog struct {
	Name           string      `json:"name"`
	Status         AgentStatus `json:"status"`
	LastAction     string      `json:"lastAction"`
	LastActionTime time.Time   `json:"lastActionTime"`

	Observe ActionObserver   `json:"-"`
	Clock   func() time.Time `json:"-"`
}

func NewActivityLog(name string) ActivityLog {
	return ActivityLog{
		Name:           name,
		Status:         StatusActive,
		LastAction:     "Initialized",
		LastActionTime: time.Now(),
	}
}

func (a *ActivityLog) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

// Perform records the action as the agent's most recent one.
func (a *ActivityLog) Perform(action string) {
	a.LastAction = action
	a.LastActionTime = a.now()
	if a.Observe != nil {
		a.Observe(a.Name, action, a.LastActionTime)
	}
}

func (a *ActivityLog) Performf(format string, args ...any) {
	a.Perform(fmt.Sprintf(format, args...))
}

// Send delivers a message to the target synchronously. There is no queueing
// and no delivery failure mode; the target's Receive runs before Send returns.
func (a *ActivityLog) Send(target *ActivityLog, message string) {
	if a.Observe != nil {
		a.Observe(a.Name, fmt.Sprintf("Sent message to %s: %s", target.Name, message), a.now())
	}
	target.Receive(a.Name, message)
}

func (a *ActivityLog) Receive(from, message string) {
	if a.Observe != nil {
		a.Observe(a.Name, fmt.Sprintf("Received message from %s: %s", from, message), a.now())
	}
	a.LastAction = "Received message from " + from
	a.LastActionTime = a.now()
}
