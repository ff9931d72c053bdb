package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
)

// Client wraps the voice platform operations the dashboard needs
type Client interface {
	ListAgents(ctx context.Context) ([]*entities.Agent, error)
	GetAgent(ctx context.Context, agentID string) (*entities.Agent, error)
	CreateAgent(ctx context.Context, cfg *entities.AgentConfig) (*entities.Agent, error)
	UpdateAgent(ctx context.Context, agentID string, patch *entities.AgentPatch) (*entities.Agent, error)
	DeleteAgent(ctx context.Context, agentID string) error

	GetLLM(ctx context.Context, llmID string) (*entities.LLM, error)
	CreateLLM(ctx context.Context, llm *entities.LLM) (*entities.LLM, error)

	CreateWebCall(ctx context.Context, agentID string) (*entities.WebCall, error)
	GetCall(ctx context.Context, callID string) (*entities.CallDetail, error)

	ListPhoneNumbers(ctx context.Context) ([]*entities.PhoneNumber, error)
	SearchPhoneNumbers(ctx context.Context, areaCode int) ([]*entities.PhoneNumber, error)
	CreatePhoneNumber(ctx context.Context, purchase *entities.PhoneNumberPurchase) (*entities.PhoneNumber, error)
	UpdatePhoneNumber(ctx context.Context, number string, patch *entities.PhoneNumberPatch) (*entities.PhoneNumber, error)
	DeletePhoneNumber(ctx context.Context, number string) error
}

// realClient talks to the platform REST API
type realClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a platform client. With useMock set, an in-memory demo
// implementation is returned and no network calls are made.
func NewClient(baseURL, apiKey string, timeout time.Duration, useMock bool) Client {
	if useMock {
		return NewMockClient()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &realClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// do sends one request. There is deliberately a single attempt per call.
func (c *realClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// ListAgents returns all agents on the account
func (c *realClient) ListAgents(ctx context.Context) ([]*entities.Agent, error) {
	var agents []*entities.Agent
	if err := c.do(ctx, http.MethodGet, "/list-agents", nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// GetAgent returns one agent
func (c *realClient) GetAgent(ctx context.Context, agentID string) (*entities.Agent, error) {
	var agent entities.Agent
	if err := c.do(ctx, http.MethodGet, "/get-agent/"+url.PathEscape(agentID), nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// CreateAgent registers a new agent
func (c *realClient) CreateAgent(ctx context.Context, cfg *entities.AgentConfig) (*entities.Agent, error) {
	var agent entities.Agent
	if err := c.do(ctx, http.MethodPost, "/create-agent", cfg, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// UpdateAgent applies a partial update
func (c *realClient) UpdateAgent(ctx context.Context, agentID string, patch *entities.AgentPatch) (*entities.Agent, error) {
	var agent entities.Agent
	if err := c.do(ctx, http.MethodPatch, "/update-agent/"+url.PathEscape(agentID), patch, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// DeleteAgent removes an agent
func (c *realClient) DeleteAgent(ctx context.Context, agentID string) error {
	return c.do(ctx, http.MethodDelete, "/delete-agent/"+url.PathEscape(agentID), nil, nil)
}

// GetLLM returns the platform LLM config
func (c *realClient) GetLLM(ctx context.Context, llmID string) (*entities.LLM, error) {
	var llm entities.LLM
	if err := c.do(ctx, http.MethodGet, "/get-retell-llm/"+url.PathEscape(llmID), nil, &llm); err != nil {
		return nil, err
	}
	return &llm, nil
}

// CreateLLM creates a platform LLM config
func (c *realClient) CreateLLM(ctx context.Context, llm *entities.LLM) (*entities.LLM, error) {
	var created entities.LLM
	if err := c.do(ctx, http.MethodPost, "/create-retell-llm", llm, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateWebCall registers a browser call and returns its access token
func (c *realClient) CreateWebCall(ctx context.Context, agentID string) (*entities.WebCall, error) {
	body := map[string]string{"agent_id": agentID}
	var call entities.WebCall
	if err := c.do(ctx, http.MethodPost, "/v2/create-web-call", body, &call); err != nil {
		return nil, err
	}
	if call.AgentID == "" {
		call.AgentID = agentID
	}
	return &call, nil
}

// callResponse is the subset of the platform call object the dashboard reads
type callResponse struct {
	CallID           string                 `json:"call_id"`
	AgentID          string                 `json:"agent_id"`
	CallStatus       string                 `json:"call_status"`
	StartTimestamp   *int64                 `json:"start_timestamp"`
	EndTimestamp     *int64                 `json:"end_timestamp"`
	Transcript       json.RawMessage        `json:"transcript"`
	TranscriptObject []entities.Utterance   `json:"transcript_object"`
	RecordingURL     *string                `json:"recording_url"`
	CallAnalysis     map[string]interface{} `json:"call_analysis"`
}

func (r *callResponse) toEntity() *entities.CallDetail {
	t := entities.ResolveTranscript(r.Transcript)
	if !t.Available() && len(r.TranscriptObject) > 0 {
		t = entities.StructuredTranscript(r.TranscriptObject)
	}
	recording := r.RecordingURL
	if recording != nil && *recording == "" {
		recording = nil
	}
	return &entities.CallDetail{
		CallID:         r.CallID,
		AgentID:        r.AgentID,
		Status:         r.CallStatus,
		StartTimestamp: r.StartTimestamp,
		EndTimestamp:   r.EndTimestamp,
		Transcript:     t,
		RecordingURL:   recording,
		Analysis:       r.CallAnalysis,
	}
}

// GetCall returns call details including the transcript
func (c *realClient) GetCall(ctx context.Context, callID string) (*entities.CallDetail, error) {
	var resp callResponse
	if err := c.do(ctx, http.MethodGet, "/v2/get-call/"+url.PathEscape(callID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

// ListPhoneNumbers returns numbers owned by the account
func (c *realClient) ListPhoneNumbers(ctx context.Context) ([]*entities.PhoneNumber, error) {
	var numbers []*entities.PhoneNumber
	if err := c.do(ctx, http.MethodGet, "/list-phone-numbers", nil, &numbers); err != nil {
		return nil, err
	}
	return numbers, nil
}

// SearchPhoneNumbers lists numbers in an area code
func (c *realClient) SearchPhoneNumbers(ctx context.Context, areaCode int) ([]*entities.PhoneNumber, error) {
	q := url.Values{}
	q.Set("area_code", strconv.Itoa(areaCode))

	var numbers []*entities.PhoneNumber
	if err := c.do(ctx, http.MethodGet, "/list-phone-numbers?"+q.Encode(), nil, &numbers); err != nil {
		return nil, err
	}
	return filterByAreaCode(numbers, areaCode), nil
}

// CreatePhoneNumber buys a number
func (c *realClient) CreatePhoneNumber(ctx context.Context, purchase *entities.PhoneNumberPurchase) (*entities.PhoneNumber, error) {
	var number entities.PhoneNumber
	if err := c.do(ctx, http.MethodPost, "/create-phone-number", purchase, &number); err != nil {
		return nil, err
	}
	return &number, nil
}

// UpdatePhoneNumber changes the agent or webhook of a number
func (c *realClient) UpdatePhoneNumber(ctx context.Context, number string, patch *entities.PhoneNumberPatch) (*entities.PhoneNumber, error) {
	var updated entities.PhoneNumber
	if err := c.do(ctx, http.MethodPatch, "/update-phone-number/"+url.PathEscape(number), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePhoneNumber releases a number
func (c *realClient) DeletePhoneNumber(ctx context.Context, number string) error {
	return c.do(ctx, http.MethodDelete, "/delete-phone-number/"+url.PathEscape(number), nil, nil)
}

// filterByAreaCode keeps numbers whose area code matches. Numbers the
// platform returned without an area code are kept.
func filterByAreaCode(numbers []*entities.PhoneNumber, areaCode int) []*entities.PhoneNumber {
	out := make([]*entities.PhoneNumber, 0, len(numbers))
	for _, n := range numbers {
		if n.AreaCode == 0 || n.AreaCode == areaCode {
			out = append(out, n)
		}
	}
	return out
}
