package presenter

import (
	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/agent"
	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
)

// ToAgentResponse converts an Agent entity to AgentResponse DTO
func ToAgentResponse(a *entities.Agent) *agent.AgentResponse {
	if a == nil {
		return nil
	}

	response := &agent.AgentResponse{
		AgentID:                 a.AgentID,
		AgentName:               a.AgentName,
		VoiceID:                 a.VoiceID,
		Language:                a.Language,
		LLMID:                   a.LLMID,
		GeneralPrompt:           a.GeneralPrompt,
		AmbientSound:            a.AmbientSound,
		AmbientSoundVolume:      a.AmbientSoundVolume,
		InterruptionSensitivity: a.InterruptionSensitivity,
		Responsiveness:          a.Responsiveness,
		EnableBackchannel:       a.EnableBackchannel,
		LastModification:        a.LastModification,
	}

	if a.ResponseEngine != nil {
		response.ResponseEngineType = a.ResponseEngine.Type
		response.LLMWebsocketURL = a.ResponseEngine.LLMWebsocketURL
		if response.LLMID == "" {
			response.LLMID = a.ResponseEngine.LLMID
		}
	}

	return response
}

// ToAgentListResponse converts a list of agents
func ToAgentListResponse(agents []*entities.Agent) *agent.ListAgentsResponse {
	out := make([]*agent.AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, ToAgentResponse(a))
	}
	return &agent.ListAgentsResponse{Agents: out, Total: len(out)}
}
