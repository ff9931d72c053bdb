package call

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/callhistory"
	usecaseErrors "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/errors"
)

// CallService drives a single operator's call session against the platform
type CallService struct {
	client      retell.Client
	history     *callhistory.Store
	logger      *zap.Logger
	detailDelay time.Duration

	// lifecycle serializes StartCall and EndCall, vendor calls included, so
	// at most one history record is Active.
	lifecycle sync.Mutex

	mu     sync.Mutex
	status Status
}

// NewCallService creates a new call session service
func NewCallService(client retell.Client, history *callhistory.Store, logger *zap.Logger, detailDelay time.Duration) *CallService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if history == nil {
		history = callhistory.NewStore()
	}
	return &CallService{
		client:      client,
		history:     history,
		logger:      logger,
		detailDelay: detailDelay,
		status:      Status{Label: LabelIdle},
	}
}

// StartCall registers a web call with the platform and prepends an Active
// record to the history
func (s *CallService) StartCall(ctx context.Context, agentID string) (*StartCallOutput, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return nil, usecaseErrors.ErrNoAgent
	}

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	if s.status.Active {
		s.mu.Unlock()
		if head, ok := s.history.Head(); ok {
			return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrCallInProgress, head.ID)
		}
		return nil, usecaseErrors.ErrCallInProgress
	}
	s.status = Status{Label: LabelConnecting, Active: true}
	s.mu.Unlock()

	out, err := s.startCall(ctx, agentID)
	if err != nil {
		s.setStatus(Status{Label: LabelFailed})
		s.logger.Warn("call.start.failed", zap.String("agent_id", agentID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("call.start.success",
		zap.String("call_id", out.CallID),
		zap.String("agent_id", agentID),
	)
	return out, nil
}

func (s *CallService) startCall(ctx context.Context, agentID string) (*StartCallOutput, error) {
	agent, err := s.client.GetAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent %s: %w", agentID, err)
	}

	webCall, err := s.client.CreateWebCall(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create web call: %w", err)
	}
	if webCall.AccessToken == "" {
		return nil, fmt.Errorf("failed to create web call: platform returned no access token")
	}

	record := s.history.StartCall(agentID, agent.AgentName, entities.DefaultAgentIcon, webCall.CallID)
	return &StartCallOutput{
		AccessToken: webCall.AccessToken,
		CallID:      webCall.CallID,
		AgentID:     agentID,
		Record:      record,
	}, nil
}

// EndCall marks the session ended and completes the head record. The status
// is reset even when there is nothing in the history to complete.
func (s *CallService) EndCall(ctx context.Context) (entities.CallRecord, error) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.setStatus(Status{Label: LabelEnded})

	record, err := s.history.EndActiveCall()
	if err != nil {
		return record, err
	}
	s.logger.Info("call.end.success", zap.String("call_id", record.ID))
	return record, nil
}

// HandleEvent applies a lifecycle event to the status label
func (s *CallService) HandleEvent(event Event) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := reduce(s.status, event)
	if err != nil {
		return s.status, err
	}
	if event.Kind == EventError {
		s.logger.Warn("call.event.error", zap.String("message", event.Message))
	}
	s.status = next
	return next, nil
}

// Status returns the current status
func (s *CallService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// FetchDetail gives the platform time to finish processing the transcript,
// then makes a single lookup
func (s *CallService) FetchDetail(ctx context.Context, callID string) (*entities.CallDetail, error) {
	if s.detailDelay > 0 {
		timer := time.NewTimer(s.detailDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	detail, err := s.client.GetCall(ctx, callID)
	if err != nil {
		return nil, fmt.Errorf("failed to get call %s: %w", callID, err)
	}
	return detail, nil
}

// History returns the call history, most recent first
func (s *CallService) History() []entities.CallRecord {
	return s.history.List()
}

// ExportCSV renders the call history as CSV
func (s *CallService) ExportCSV() (string, error) {
	return s.history.ExportCSV()
}

func (s *CallService) setStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}
