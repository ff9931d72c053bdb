package call

// StartCallRequest starts a browser call with an agent
type StartCallRequest struct {
	AgentID string `json:"agent_id"`
}

// CallEventRequest reports a lifecycle event from the browser call client
type CallEventRequest struct {
	Event   string `json:"event" validate:"required"`
	Message string `json:"message,omitempty"`
}
