package entities

// Response engine types understood by the platform
const (
	ResponseEngineRetellLLM = "retell-llm"
	ResponseEngineCustomLLM = "custom-llm"
)

// ResponseEngine selects what produces the agent's replies
type ResponseEngine struct {
	Type            string `json:"type"`
	LLMID           string `json:"llm_id,omitempty"`
	LLMWebsocketURL string `json:"llm_websocket_url,omitempty"`
}

// Agent is a voice+prompt persona registered on the platform
type Agent struct {
	AgentID                 string          `json:"agent_id"`
	AgentName               string          `json:"agent_name"`
	VoiceID                 string          `json:"voice_id"`
	Language                string          `json:"language,omitempty"`
	ResponseEngine          *ResponseEngine `json:"response_engine,omitempty"`
	AmbientSound            *string         `json:"ambient_sound,omitempty"`
	AmbientSoundVolume      *float64        `json:"ambient_sound_volume,omitempty"`
	InterruptionSensitivity *float64        `json:"interruption_sensitivity,omitempty"`
	Responsiveness          *float64        `json:"responsiveness,omitempty"`
	EnableBackchannel       *bool           `json:"enable_backchannel,omitempty"`
	LastModification        int64           `json:"last_modification_timestamp,omitempty"`

	// Filled from the agent's LLM, not part of the platform agent object
	GeneralPrompt string `json:"-"`
	LLMID         string `json:"-"`
}

// RetellLLMID returns the id of the platform LLM backing the agent, if any
func (a *Agent) RetellLLMID() string {
	if a.ResponseEngine == nil || a.ResponseEngine.Type != ResponseEngineRetellLLM {
		return ""
	}
	return a.ResponseEngine.LLMID
}

// AgentConfig is the payload for creating an agent
type AgentConfig struct {
	AgentName               string          `json:"agent_name"`
	VoiceID                 string          `json:"voice_id"`
	Language                string          `json:"language"`
	ResponseEngine          *ResponseEngine `json:"response_engine"`
	AmbientSound            *string         `json:"ambient_sound,omitempty"`
	AmbientSoundVolume      *float64        `json:"ambient_sound_volume,omitempty"`
	InterruptionSensitivity *float64        `json:"interruption_sensitivity,omitempty"`
	Responsiveness          *float64        `json:"responsiveness,omitempty"`
	EnableBackchannel       *bool           `json:"enable_backchannel,omitempty"`
}

// AgentPatch is a partial agent update; nil fields are left untouched
type AgentPatch struct {
	AgentName               *string  `json:"agent_name,omitempty"`
	VoiceID                 *string  `json:"voice_id,omitempty"`
	Language                *string  `json:"language,omitempty"`
	AmbientSound            *string  `json:"ambient_sound,omitempty"`
	AmbientSoundVolume      *float64 `json:"ambient_sound_volume,omitempty"`
	InterruptionSensitivity *float64 `json:"interruption_sensitivity,omitempty"`
	Responsiveness          *float64 `json:"responsiveness,omitempty"`
	EnableBackchannel       *bool    `json:"enable_backchannel,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p AgentPatch) IsEmpty() bool {
	return p.AgentName == nil &&
		p.VoiceID == nil &&
		p.Language == nil &&
		p.AmbientSound == nil &&
		p.AmbientSoundVolume == nil &&
		p.InterruptionSensitivity == nil &&
		p.Responsiveness == nil &&
		p.EnableBackchannel == nil
}

// LLM is the platform-hosted language model config behind an agent
type LLM struct {
	LLMID         string `json:"llm_id"`
	GeneralPrompt string `json:"general_prompt"`
	Model         string `json:"model,omitempty"`
	BeginMessage  string `json:"begin_message,omitempty"`
}
