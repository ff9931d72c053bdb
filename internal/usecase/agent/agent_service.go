package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
)

// Defaults applied when creating agents
const (
	DefaultVoiceID       = "11labs-Adrian"
	DefaultLanguage      = "en-US"
	DefaultGeneralPrompt = "You are a helpful assistant."
	DefaultLLMModel      = "gpt-4o"
	DefaultBeginMessage  = "Hello! How can I help you today?"

	ambientSoundOff = "off"
)

// Messages returned alongside update results
const (
	MessageUpdated   = "Agent updated successfully"
	MessageNoChanges = "No changes to update"
)

// PromptCache keeps LLM general prompts keyed by LLM id
type PromptCache interface {
	Get(key string) (string, bool)
	Set(key string, value string, expiration time.Duration)
}

// AgentService handles agent business logic
type AgentService struct {
	client            retell.Client
	logger            *zap.Logger
	enrichConcurrency int

	prompts   PromptCache
	promptTTL time.Duration
}

// Option configures an AgentService
type Option func(*AgentService)

// WithPromptCache serves LLM prompts from cache for ttl after a lookup
func WithPromptCache(cache PromptCache, ttl time.Duration) Option {
	return func(s *AgentService) {
		if cache != nil && ttl > 0 {
			s.prompts = cache
			s.promptTTL = ttl
		}
	}
}

// NewAgentService creates a new agent service
func NewAgentService(client retell.Client, logger *zap.Logger, enrichConcurrency int, opts ...Option) *AgentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if enrichConcurrency < 1 {
		enrichConcurrency = 1
	}
	s := &AgentService{
		client:            client,
		logger:            logger,
		enrichConcurrency: enrichConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAgentInput represents input for creating an agent
type CreateAgentInput struct {
	AgentName               string
	VoiceID                 string
	Language                string
	GeneralPrompt           string
	LLMWebsocketURL         string
	LLMID                   string
	AmbientSound            string
	AmbientSoundVolume      *float64
	InterruptionSensitivity *float64
	Responsiveness          *float64
	EnableBackchannel       *bool
}

// UpdateAgentInput represents a partial update. GeneralPrompt, LLMID and
// AgentID are accepted from clients but never forwarded to the platform.
type UpdateAgentInput struct {
	Patch         entities.AgentPatch
	GeneralPrompt *string
	LLMID         *string
	AgentID       *string
}

// UpdateAgentOutput is the agent after the update and a user-facing message
type UpdateAgentOutput struct {
	Agent   *entities.Agent
	Message string
}

// List returns all agents with their LLM prompts filled in
func (s *AgentService) List(ctx context.Context) ([]*entities.Agent, error) {
	agents, err := s.client.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.enrichConcurrency)
	for _, a := range agents {
		g.Go(func() error {
			s.enrich(gctx, a)
			return nil
		})
	}
	_ = g.Wait()

	return agents, nil
}

// Get returns one agent with its LLM prompt filled in
func (s *AgentService) Get(ctx context.Context, agentID string) (*entities.Agent, error) {
	a, err := s.client.GetAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent %s: %w", agentID, err)
	}
	s.enrich(ctx, a)
	return a, nil
}

// enrich copies the general prompt from the agent's LLM. Lookup failures are
// logged and otherwise ignored.
func (s *AgentService) enrich(ctx context.Context, a *entities.Agent) {
	llmID := a.RetellLLMID()
	if llmID == "" {
		return
	}
	if s.prompts != nil {
		if prompt, ok := s.prompts.Get(llmID); ok {
			a.GeneralPrompt = prompt
			a.LLMID = llmID
			return
		}
	}
	llm, err := s.client.GetLLM(ctx, llmID)
	if err != nil {
		s.logger.Warn("agent.enrich.llm_lookup_failed",
			zap.String("agent_id", a.AgentID),
			zap.String("llm_id", llmID),
			zap.Error(err),
		)
		return
	}
	a.GeneralPrompt = llm.GeneralPrompt
	a.LLMID = llm.LLMID
	s.cachePrompt(llm.LLMID, llm.GeneralPrompt)
}

func (s *AgentService) cachePrompt(llmID, prompt string) {
	if s.prompts != nil {
		s.prompts.Set(llmID, prompt, s.promptTTL)
	}
}

// Create registers a new agent. The response engine is chosen in order:
// custom websocket LLM, existing platform LLM, or a freshly created LLM
// seeded with the general prompt.
func (s *AgentService) Create(ctx context.Context, input CreateAgentInput) (*entities.Agent, error) {
	name := strings.TrimSpace(input.AgentName)
	if name == "" {
		return nil, entities.ErrInvalidAgent
	}

	cfg := &entities.AgentConfig{
		AgentName:               name,
		VoiceID:                 orDefault(input.VoiceID, DefaultVoiceID),
		Language:                orDefault(input.Language, DefaultLanguage),
		AmbientSoundVolume:      input.AmbientSoundVolume,
		InterruptionSensitivity: input.InterruptionSensitivity,
		Responsiveness:          input.Responsiveness,
		EnableBackchannel:       input.EnableBackchannel,
	}
	if input.AmbientSound != "" && input.AmbientSound != ambientSoundOff {
		sound := input.AmbientSound
		cfg.AmbientSound = &sound
	}

	var generalPrompt string
	switch {
	case input.LLMWebsocketURL != "":
		cfg.ResponseEngine = &entities.ResponseEngine{
			Type:            entities.ResponseEngineCustomLLM,
			LLMWebsocketURL: input.LLMWebsocketURL,
		}
	case input.LLMID != "":
		cfg.ResponseEngine = &entities.ResponseEngine{
			Type:  entities.ResponseEngineRetellLLM,
			LLMID: input.LLMID,
		}
	default:
		generalPrompt = orDefault(strings.TrimSpace(input.GeneralPrompt), DefaultGeneralPrompt)
		llm, err := s.client.CreateLLM(ctx, &entities.LLM{
			GeneralPrompt: generalPrompt,
			Model:         DefaultLLMModel,
			BeginMessage:  DefaultBeginMessage,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create llm: %w", err)
		}
		s.logger.Info("agent.create.llm_created", zap.String("llm_id", llm.LLMID))
		s.cachePrompt(llm.LLMID, generalPrompt)
		cfg.ResponseEngine = &entities.ResponseEngine{
			Type:  entities.ResponseEngineRetellLLM,
			LLMID: llm.LLMID,
		}
	}

	a, err := s.client.CreateAgent(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	if generalPrompt != "" {
		a.GeneralPrompt = generalPrompt
		a.LLMID = cfg.ResponseEngine.LLMID
	}

	s.logger.Info("agent.create.success", zap.String("agent_id", a.AgentID))
	return a, nil
}

// Update applies the patch. When nothing updatable is left the current
// agent is returned unchanged.
func (s *AgentService) Update(ctx context.Context, agentID string, input UpdateAgentInput) (*UpdateAgentOutput, error) {
	if input.GeneralPrompt != nil || input.LLMID != nil || input.AgentID != nil {
		s.logger.Debug("agent.update.fields_ignored", zap.String("agent_id", agentID))
	}

	if input.Patch.IsEmpty() {
		a, err := s.client.GetAgent(ctx, agentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get agent %s: %w", agentID, err)
		}
		return &UpdateAgentOutput{Agent: a, Message: MessageNoChanges}, nil
	}

	patch := input.Patch
	a, err := s.client.UpdateAgent(ctx, agentID, &patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent %s: %w", agentID, err)
	}

	s.logger.Info("agent.update.success", zap.String("agent_id", agentID))
	return &UpdateAgentOutput{Agent: a, Message: MessageUpdated}, nil
}

// Delete removes an agent
func (s *AgentService) Delete(ctx context.Context, agentID string) error {
	if err := s.client.DeleteAgent(ctx, agentID); err != nil {
		return fmt.Errorf("failed to delete agent %s: %w", agentID, err)
	}
	s.logger.Info("agent.delete.success", zap.String("agent_id", agentID))
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
