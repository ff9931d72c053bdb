package entities

import "time"

// CallStatus is the lifecycle state of a call in the local history
type CallStatus string

const (
	CallStatusActive    CallStatus = "Active"
	CallStatusCompleted CallStatus = "Completed"
)

// DefaultAgentIcon is shown next to agent names in the call history
const DefaultAgentIcon = "🤖"

// CallRecord is one entry of the in-memory call history
type CallRecord struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Status    CallStatus `json:"status"`
	AgentID   string     `json:"agent_id,omitempty"`
	AgentName string     `json:"agent_name"`
	AgentIcon string     `json:"agent_icon"`
}

// IsActive reports whether the call has not been ended yet
func (r *CallRecord) IsActive() bool {
	return r.Status == CallStatusActive
}

// Complete moves an active record to Completed. It returns false if the
// record was already completed.
func (r *CallRecord) Complete() bool {
	if r.Status != CallStatusActive {
		return false
	}
	r.Status = CallStatusCompleted
	return true
}

// WebCall is what the platform hands back when a browser call is registered
type WebCall struct {
	CallID      string `json:"call_id"`
	AgentID     string `json:"agent_id"`
	AccessToken string `json:"access_token"`
}

// CallDetail is fetched on demand from the platform and never stored
type CallDetail struct {
	CallID         string
	AgentID        string
	Status         string
	StartTimestamp *int64 // unix millis
	EndTimestamp   *int64 // unix millis
	Transcript     Transcript
	RecordingURL   *string
	Analysis       map[string]interface{}
}

// DurationSeconds is end minus start rounded to whole seconds, or 0 when
// either timestamp is missing.
func (d *CallDetail) DurationSeconds() int {
	if d.StartTimestamp == nil || d.EndTimestamp == nil {
		return 0
	}
	ms := *d.EndTimestamp - *d.StartTimestamp
	if ms <= 0 {
		return 0
	}
	return int((ms + 500) / 1000)
}
