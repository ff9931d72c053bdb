package agent

// CreateAgentRequest represents the request to create an agent
type CreateAgentRequest struct {
	AgentName               string   `json:"agent_name" validate:"required,min=1,max=255"`
	VoiceID                 string   `json:"voice_id,omitempty"`
	Language                string   `json:"language,omitempty"`
	GeneralPrompt           string   `json:"general_prompt,omitempty"`
	LLMWebsocketURL         string   `json:"llm_websocket_url,omitempty" validate:"omitempty,url"`
	LLMID                   string   `json:"llm_id,omitempty"`
	AmbientSound            string   `json:"ambient_sound,omitempty"`
	AmbientSoundVolume      *float64 `json:"ambient_sound_volume,omitempty" validate:"omitempty,min=0,max=2"`
	InterruptionSensitivity *float64 `json:"interruption_sensitivity,omitempty" validate:"omitempty,min=0,max=1"`
	Responsiveness          *float64 `json:"responsiveness,omitempty" validate:"omitempty,min=0,max=1"`
	EnableBackchannel       *bool    `json:"enable_backchannel,omitempty"`
}

// UpdateAgentRequest represents a partial agent update. GeneralPrompt, LLMID
// and AgentID are accepted but not applied.
type UpdateAgentRequest struct {
	AgentName               *string  `json:"agent_name,omitempty" validate:"omitempty,min=1,max=255"`
	VoiceID                 *string  `json:"voice_id,omitempty"`
	Language                *string  `json:"language,omitempty"`
	AmbientSound            *string  `json:"ambient_sound,omitempty"`
	AmbientSoundVolume      *float64 `json:"ambient_sound_volume,omitempty" validate:"omitempty,min=0,max=2"`
	InterruptionSensitivity *float64 `json:"interruption_sensitivity,omitempty" validate:"omitempty,min=0,max=1"`
	Responsiveness          *float64 `json:"responsiveness,omitempty" validate:"omitempty,min=0,max=1"`
	EnableBackchannel       *bool    `json:"enable_backchannel,omitempty"`
	GeneralPrompt           *string  `json:"general_prompt,omitempty"`
	LLMID                   *string  `json:"llm_id,omitempty"`
	AgentID                 *string  `json:"agent_id,omitempty"`
}
