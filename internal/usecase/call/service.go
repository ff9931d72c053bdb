package call

import (
	"context"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
)

// Service defines the interface for call session use case
type Service interface {
	// StartCall registers a web call for the agent and records it in the history
	StartCall(ctx context.Context, agentID string) (*StartCallOutput, error)

	// EndCall completes the active history record
	EndCall(ctx context.Context) (entities.CallRecord, error)

	// HandleEvent applies a client-side lifecycle event to the session status
	HandleEvent(event Event) (Status, error)

	// Status returns the current status label
	Status() Status

	// FetchDetail waits for the platform to settle, then fetches call details
	FetchDetail(ctx context.Context, callID string) (*entities.CallDetail, error)

	// History returns the call history, most recent first
	History() []entities.CallRecord

	// ExportCSV renders the call history as CSV
	ExportCSV() (string, error)
}

// Ensure CallService implements Service interface
var _ Service = (*CallService)(nil)

// StartCallOutput is what the browser needs to join the call
type StartCallOutput struct {
	AccessToken string
	CallID      string
	AgentID     string
	Record      entities.CallRecord
}
