package call

import "time"

// StartCallResponse carries what the browser needs to join the call
type StartCallResponse struct {
	AccessToken string              `json:"access_token"`
	CallID      string              `json:"call_id"`
	AgentID     string              `json:"agent_id"`
	Record      *CallRecordResponse `json:"record"`
}

// CallRecordResponse is one call history entry
type CallRecordResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Display   string    `json:"display_timestamp"`
	Status    string    `json:"status"`
	AgentID   string    `json:"agent_id,omitempty"`
	AgentName string    `json:"agent_name"`
	AgentIcon string    `json:"agent_icon"`
}

// CallHistoryResponse lists the call history, most recent first
type CallHistoryResponse struct {
	Calls []*CallRecordResponse `json:"calls"`
	Total int                   `json:"total"`
}

// CallStatusResponse is the session status label
type CallStatusResponse struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// TranscriptTurnResponse is one speaker turn
type TranscriptTurnResponse struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// CallDetailResponse is a call as fetched from the platform with its
// transcript split into turns
type CallDetailResponse struct {
	CallID              string                    `json:"call_id"`
	AgentID             string                    `json:"agent_id,omitempty"`
	Status              string                    `json:"status,omitempty"`
	DurationSeconds     int                       `json:"duration_seconds"`
	Duration            string                    `json:"duration"`
	TranscriptAvailable bool                      `json:"transcript_available"`
	TranscriptMessage   string                    `json:"transcript_message,omitempty"`
	Turns               []*TranscriptTurnResponse `json:"turns"`
	RecordingURL        *string                   `json:"recording_url,omitempty"`
	Analysis            map[string]interface{}    `json:"call_analysis,omitempty"`
}
