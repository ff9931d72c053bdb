package agent

import (
	"context"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
)

// Service defines the interface for agent use case
type Service interface {
	// List returns all agents, each enriched with its LLM prompt when available
	List(ctx context.Context) ([]*entities.Agent, error)

	// Get returns one agent enriched with its LLM prompt
	Get(ctx context.Context, agentID string) (*entities.Agent, error)

	// Create registers an agent, creating an LLM for it when needed
	Create(ctx context.Context, input CreateAgentInput) (*entities.Agent, error)

	// Update applies a partial update
	Update(ctx context.Context, agentID string, input UpdateAgentInput) (*UpdateAgentOutput, error)

	// Delete removes an agent
	Delete(ctx context.Context, agentID string) error
}

// Ensure AgentService implements Service interface
var _ Service = (*AgentService)(nil)
