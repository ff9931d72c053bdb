package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/agent"
	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/presenter"
	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	agentUsecase "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/agent"
)

// Agent handles agent-related HTTP requests
type Agent struct {
	agentService agentUsecase.Service
	logger       *zap.Logger
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService agentUsecase.Service, logger *zap.Logger) *Agent {
	return &Agent{
		agentService: agentService,
		logger:       logger,
	}
}

// ListAgents handles GET /agents
// @Summary      List agents
// @Description  Lists all agents with their LLM general prompt when available
// @Tags         Agents
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=agent.ListAgentsResponse}
// @Failure      502  {object}  common.ErrorResponse  "Platform rejected the request"
// @Failure      503  {object}  common.ErrorResponse  "Platform unreachable"
// @Router       /agents [get]
func (h *Agent) ListAgents(c echo.Context) error {
	agents, err := h.agentService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAgentListResponse(agents))
}

// GetAgent handles GET /agents/:id
// @Summary      Get agent
// @Tags         Agents
// @Produce      json
// @Param        id   path      string  true  "Agent ID"
// @Success      200  {object}  common.SuccessResponse{data=agent.AgentResponse}
// @Failure      404  {object}  common.ErrorResponse  "Agent not found"
// @Router       /agents/{id} [get]
func (h *Agent) GetAgent(c echo.Context) error {
	a, err := h.agentService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAgentResponse(a))
}

// CreateAgent handles POST /agents
// @Summary      Create agent
// @Description  Creates an agent. Without llm_id or llm_websocket_url an LLM is created from general_prompt.
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Param        request  body      agent.CreateAgentRequest  true  "Agent creation request"
// @Success      201      {object}  common.SuccessResponse{data=agent.AgentResponse}
// @Failure      400      {object}  common.ErrorResponse  "Invalid request or validation failed"
// @Router       /agents [post]
func (h *Agent) CreateAgent(c echo.Context) error {
	var req agent.CreateAgentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	a, err := h.agentService.Create(c.Request().Context(), agentUsecase.CreateAgentInput{
		AgentName:               req.AgentName,
		VoiceID:                 req.VoiceID,
		Language:                req.Language,
		GeneralPrompt:           req.GeneralPrompt,
		LLMWebsocketURL:         req.LLMWebsocketURL,
		LLMID:                   req.LLMID,
		AmbientSound:            req.AmbientSound,
		AmbientSoundVolume:      req.AmbientSoundVolume,
		InterruptionSensitivity: req.InterruptionSensitivity,
		Responsiveness:          req.Responsiveness,
		EnableBackchannel:       req.EnableBackchannel,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusCreated, "Agent created successfully", presenter.ToAgentResponse(a))
}

// UpdateAgent handles PATCH /agents/:id
// @Summary      Update agent
// @Description  Partially updates an agent. general_prompt, llm_id and agent_id are ignored.
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Agent ID"
// @Param        request  body      agent.UpdateAgentRequest  true  "Fields to update"
// @Success      200      {object}  common.SuccessResponse{data=agent.UpdateAgentResponse}
// @Failure      404      {object}  common.ErrorResponse  "Agent not found"
// @Router       /agents/{id} [patch]
func (h *Agent) UpdateAgent(c echo.Context) error {
	var req agent.UpdateAgentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.agentService.Update(c.Request().Context(), c.Param("id"), agentUsecase.UpdateAgentInput{
		Patch: entities.AgentPatch{
			AgentName:               req.AgentName,
			VoiceID:                 req.VoiceID,
			Language:                req.Language,
			AmbientSound:            req.AmbientSound,
			AmbientSoundVolume:      req.AmbientSoundVolume,
			InterruptionSensitivity: req.InterruptionSensitivity,
			Responsiveness:          req.Responsiveness,
			EnableBackchannel:       req.EnableBackchannel,
		},
		GeneralPrompt: req.GeneralPrompt,
		LLMID:         req.LLMID,
		AgentID:       req.AgentID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccessWithStatus(h.logger, c, http.StatusOK, out.Message, &agent.UpdateAgentResponse{
		Agent:   presenter.ToAgentResponse(out.Agent),
		Message: out.Message,
	})
}

// DeleteAgent handles DELETE /agents/:id
// @Summary      Delete agent
// @Tags         Agents
// @Produce      json
// @Param        id   path      string  true  "Agent ID"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse  "Agent not found"
// @Router       /agents/{id} [delete]
func (h *Agent) DeleteAgent(c echo.Context) error {
	if err := h.agentService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusOK, "Agent deleted successfully", nil)
}
