package agent

// AgentResponse represents an agent in API responses
type AgentResponse struct {
	AgentID                 string   `json:"agent_id"`
	AgentName               string   `json:"agent_name"`
	VoiceID                 string   `json:"voice_id"`
	Language                string   `json:"language,omitempty"`
	ResponseEngineType      string   `json:"response_engine_type,omitempty"`
	LLMID                   string   `json:"llm_id,omitempty"`
	LLMWebsocketURL         string   `json:"llm_websocket_url,omitempty"`
	GeneralPrompt           string   `json:"general_prompt,omitempty"`
	AmbientSound            *string  `json:"ambient_sound,omitempty"`
	AmbientSoundVolume      *float64 `json:"ambient_sound_volume,omitempty"`
	InterruptionSensitivity *float64 `json:"interruption_sensitivity,omitempty"`
	Responsiveness          *float64 `json:"responsiveness,omitempty"`
	EnableBackchannel       *bool    `json:"enable_backchannel,omitempty"`
	LastModification        int64    `json:"last_modification_timestamp,omitempty"`
}

// UpdateAgentResponse is the agent after an update
type UpdateAgentResponse struct {
	Agent   *AgentResponse `json:"agent"`
	Message string         `json:"message"`
}

// ListAgentsResponse contains all agents
type ListAgentsResponse struct {
	Agents []*AgentResponse `json:"agents"`
	Total  int              `json:"total"`
}
