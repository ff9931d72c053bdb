package retell

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
)

// DemoAgentID is the agent seeded into the mock client
const DemoAgentID = "agent_e0f1f66d174e629f7eda2adb64"

const demoTranscript = "Agent: Hello! How can I help you today?\n" +
	"User: I'd like to know your opening hours.\n" +
	"Agent: We're open from nine to five, Monday to Friday.\n"

// mockClient is an in-memory stand-in for the platform used in demo mode
// and tests
type mockClient struct {
	mu      sync.Mutex
	agents  map[string]*entities.Agent
	llms    map[string]*entities.LLM
	calls   map[string]*entities.CallDetail
	numbers map[string]*entities.PhoneNumber
	now     func() time.Time
}

// NewMockClient creates a mock platform seeded with one demo agent
func NewMockClient() Client {
	m := &mockClient{
		agents:  make(map[string]*entities.Agent),
		llms:    make(map[string]*entities.LLM),
		calls:   make(map[string]*entities.CallDetail),
		numbers: make(map[string]*entities.PhoneNumber),
		now:     time.Now,
	}

	llm := &entities.LLM{
		LLMID:         "llm_demo",
		GeneralPrompt: "You are a helpful and friendly AI assistant.",
		Model:         "gpt-4o",
		BeginMessage:  "Hello! How can I help you today?",
	}
	m.llms[llm.LLMID] = llm
	m.agents[DemoAgentID] = &entities.Agent{
		AgentID:          DemoAgentID,
		AgentName:        "Demo Receptionist",
		VoiceID:          "11labs-Adrian",
		Language:         "en-US",
		ResponseEngine:   &entities.ResponseEngine{Type: entities.ResponseEngineRetellLLM, LLMID: llm.LLMID},
		LastModification: m.now().UnixMilli(),
	}
	return m
}

func notFound(what, id string) error {
	return &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("%s %s not found", what, id)}
}

func cloneAgent(a *entities.Agent) *entities.Agent {
	c := *a
	return &c
}

func cloneNumber(n *entities.PhoneNumber) *entities.PhoneNumber {
	c := *n
	return &c
}

// ListAgents (mock) returns the stored agents ordered by id
func (m *mockClient) ListAgents(ctx context.Context) ([]*entities.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entities.Agent, 0, len(m.agents))
	for _, a := range m.agents {
		out = append(out, cloneAgent(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentID < out[j].AgentID })
	return out, nil
}

// GetAgent (mock)
func (m *mockClient) GetAgent(ctx context.Context, agentID string) (*entities.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.agents[agentID]
	if !ok {
		return nil, notFound("agent", agentID)
	}
	return cloneAgent(a), nil
}

// CreateAgent (mock)
func (m *mockClient) CreateAgent(ctx context.Context, cfg *entities.AgentConfig) (*entities.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := &entities.Agent{
		AgentID:                 "agent_" + uuid.NewString(),
		AgentName:               cfg.AgentName,
		VoiceID:                 cfg.VoiceID,
		Language:                cfg.Language,
		ResponseEngine:          cfg.ResponseEngine,
		AmbientSound:            cfg.AmbientSound,
		AmbientSoundVolume:      cfg.AmbientSoundVolume,
		InterruptionSensitivity: cfg.InterruptionSensitivity,
		Responsiveness:          cfg.Responsiveness,
		EnableBackchannel:       cfg.EnableBackchannel,
		LastModification:        m.now().UnixMilli(),
	}
	m.agents[a.AgentID] = a
	return cloneAgent(a), nil
}

// UpdateAgent (mock)
func (m *mockClient) UpdateAgent(ctx context.Context, agentID string, patch *entities.AgentPatch) (*entities.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.agents[agentID]
	if !ok {
		return nil, notFound("agent", agentID)
	}
	if patch.AgentName != nil {
		a.AgentName = *patch.AgentName
	}
	if patch.VoiceID != nil {
		a.VoiceID = *patch.VoiceID
	}
	if patch.Language != nil {
		a.Language = *patch.Language
	}
	if patch.AmbientSound != nil {
		a.AmbientSound = patch.AmbientSound
	}
	if patch.AmbientSoundVolume != nil {
		a.AmbientSoundVolume = patch.AmbientSoundVolume
	}
	if patch.InterruptionSensitivity != nil {
		a.InterruptionSensitivity = patch.InterruptionSensitivity
	}
	if patch.Responsiveness != nil {
		a.Responsiveness = patch.Responsiveness
	}
	if patch.EnableBackchannel != nil {
		a.EnableBackchannel = patch.EnableBackchannel
	}
	a.LastModification = m.now().UnixMilli()
	return cloneAgent(a), nil
}

// DeleteAgent (mock)
func (m *mockClient) DeleteAgent(ctx context.Context, agentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.agents[agentID]; !ok {
		return notFound("agent", agentID)
	}
	delete(m.agents, agentID)
	return nil
}

// GetLLM (mock)
func (m *mockClient) GetLLM(ctx context.Context, llmID string) (*entities.LLM, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	llm, ok := m.llms[llmID]
	if !ok {
		return nil, notFound("llm", llmID)
	}
	c := *llm
	return &c, nil
}

// CreateLLM (mock)
func (m *mockClient) CreateLLM(ctx context.Context, llm *entities.LLM) (*entities.LLM, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := *llm
	created.LLMID = "llm_" + uuid.NewString()
	m.llms[created.LLMID] = &created
	c := created
	return &c, nil
}

// CreateWebCall (mock) registers a call that is already finished with a
// canned transcript, so detail views have something to show
func (m *mockClient) CreateWebCall(ctx context.Context, agentID string) (*entities.WebCall, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.agents[agentID]; !ok {
		return nil, notFound("agent", agentID)
	}

	callID := "call_" + uuid.NewString()
	start := m.now().UnixMilli()
	end := start + 42_000
	m.calls[callID] = &entities.CallDetail{
		CallID:         callID,
		AgentID:        agentID,
		Status:         "ended",
		StartTimestamp: &start,
		EndTimestamp:   &end,
		Transcript:     entities.RawTranscript(demoTranscript),
	}
	return &entities.WebCall{
		CallID:      callID,
		AgentID:     agentID,
		AccessToken: "mock-token-" + uuid.NewString(),
	}, nil
}

// GetCall (mock)
func (m *mockClient) GetCall(ctx context.Context, callID string) (*entities.CallDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call, ok := m.calls[callID]
	if !ok {
		return nil, notFound("call", callID)
	}
	c := *call
	return &c, nil
}

// ListPhoneNumbers (mock)
func (m *mockClient) ListPhoneNumbers(ctx context.Context) ([]*entities.PhoneNumber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entities.PhoneNumber, 0, len(m.numbers))
	for _, n := range m.numbers {
		out = append(out, cloneNumber(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PhoneNumber < out[j].PhoneNumber })
	return out, nil
}

// SearchPhoneNumbers (mock)
func (m *mockClient) SearchPhoneNumbers(ctx context.Context, areaCode int) ([]*entities.PhoneNumber, error) {
	all, err := m.ListPhoneNumbers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.PhoneNumber, 0, len(all))
	for _, n := range all {
		if n.AreaCode == areaCode {
			out = append(out, n)
		}
	}
	return out, nil
}

// CreatePhoneNumber (mock) simulates buying a +1 <area> 555 xxxx number
func (m *mockClient) CreatePhoneNumber(ctx context.Context, purchase *entities.PhoneNumberPurchase) (*entities.PhoneNumber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := &entities.PhoneNumber{LastModification: m.now().UnixMilli()}
	if purchase.PhoneNumber != "" {
		n.PhoneNumber = purchase.PhoneNumber
	} else {
		n.AreaCode = purchase.AreaCode
		n.PhoneNumber = fmt.Sprintf("+1%03d555%04d", purchase.AreaCode, len(m.numbers)%10000)
		n.PhoneNumberPretty = fmt.Sprintf("+1 (%03d) 555-%04d", purchase.AreaCode, len(m.numbers)%10000)
	}
	if _, exists := m.numbers[n.PhoneNumber]; exists {
		return nil, &APIError{StatusCode: http.StatusConflict, Message: "phone number " + n.PhoneNumber + " already owned"}
	}
	if n.AreaCode == 0 && len(n.PhoneNumber) >= 5 {
		if code, err := strconv.Atoi(n.PhoneNumber[2:5]); err == nil {
			n.AreaCode = code
		}
	}
	if purchase.AgentID != "" {
		agentID := purchase.AgentID
		n.AgentID = &agentID
	}
	m.numbers[n.PhoneNumber] = n
	return cloneNumber(n), nil
}

// UpdatePhoneNumber (mock)
func (m *mockClient) UpdatePhoneNumber(ctx context.Context, number string, patch *entities.PhoneNumberPatch) (*entities.PhoneNumber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.numbers[number]
	if !ok {
		return nil, notFound("phone number", number)
	}
	if patch.AgentID != nil {
		n.AgentID = patch.AgentID
	}
	if patch.InboundWebhookURL != nil {
		n.InboundWebhookURL = patch.InboundWebhookURL
	}
	n.LastModification = m.now().UnixMilli()
	return cloneNumber(n), nil
}

// DeletePhoneNumber (mock)
func (m *mockClient) DeletePhoneNumber(ctx context.Context, number string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.numbers[number]; !ok {
		return notFound("phone number", number)
	}
	delete(m.numbers, number)
	return nil
}
