package agent

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/cache"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
)

// recordingClient wraps the mock platform and remembers what was sent
type recordingClient struct {
	retell.Client

	mu         sync.Mutex
	created    *entities.AgentConfig
	createdLLM *entities.LLM
	patches    []*entities.AgentPatch
	failLLMFor string
	llmLookups int
}

func newRecordingClient() *recordingClient {
	return &recordingClient{Client: retell.NewMockClient()}
}

func (c *recordingClient) CreateAgent(ctx context.Context, cfg *entities.AgentConfig) (*entities.Agent, error) {
	c.mu.Lock()
	c.created = cfg
	c.mu.Unlock()
	return c.Client.CreateAgent(ctx, cfg)
}

func (c *recordingClient) CreateLLM(ctx context.Context, llm *entities.LLM) (*entities.LLM, error) {
	c.mu.Lock()
	c.createdLLM = llm
	c.mu.Unlock()
	return c.Client.CreateLLM(ctx, llm)
}

func (c *recordingClient) UpdateAgent(ctx context.Context, id string, p *entities.AgentPatch) (*entities.Agent, error) {
	c.mu.Lock()
	c.patches = append(c.patches, p)
	c.mu.Unlock()
	return c.Client.UpdateAgent(ctx, id, p)
}

func (c *recordingClient) GetLLM(ctx context.Context, id string) (*entities.LLM, error) {
	c.mu.Lock()
	c.llmLookups++
	fail := id == c.failLLMFor
	c.mu.Unlock()
	if fail {
		return nil, &retell.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}
	}
	return c.Client.GetLLM(ctx, id)
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestCreate_AutoCreatesLLM(t *testing.T) {
	client := newRecordingClient()
	svc := NewAgentService(client, nil, 4)

	a, err := svc.Create(context.Background(), CreateAgentInput{
		AgentName:    "Support",
		AmbientSound: "off",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if client.createdLLM == nil {
		t.Fatalf("expected an LLM to be created")
	}
	if client.createdLLM.GeneralPrompt != DefaultGeneralPrompt || client.createdLLM.Model != DefaultLLMModel {
		t.Fatalf("unexpected llm %+v", client.createdLLM)
	}
	cfg := client.created
	if cfg.VoiceID != DefaultVoiceID || cfg.Language != DefaultLanguage {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.AmbientSound != nil {
		t.Fatalf("ambient sound 'off' must not be forwarded")
	}
	if cfg.ResponseEngine.Type != entities.ResponseEngineRetellLLM || cfg.ResponseEngine.LLMID == "" {
		t.Fatalf("unexpected engine %+v", cfg.ResponseEngine)
	}
	if a.GeneralPrompt != DefaultGeneralPrompt {
		t.Fatalf("created agent should carry its prompt, got %q", a.GeneralPrompt)
	}
}

func TestCreate_ResponseEngineSelection(t *testing.T) {
	cases := []struct {
		name     string
		input    CreateAgentInput
		wantType string
	}{
		{"websocket wins", CreateAgentInput{AgentName: "a", LLMWebsocketURL: "wss://llm.example.com", LLMID: "llm_x"}, entities.ResponseEngineCustomLLM},
		{"existing llm", CreateAgentInput{AgentName: "a", LLMID: "llm_x"}, entities.ResponseEngineRetellLLM},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newRecordingClient()
			svc := NewAgentService(client, nil, 1)
			if _, err := svc.Create(context.Background(), tc.input); err != nil {
				t.Fatalf("Create: %v", err)
			}
			if client.createdLLM != nil {
				t.Fatalf("no LLM should be created")
			}
			if client.created.ResponseEngine.Type != tc.wantType {
				t.Fatalf("got engine %s want %s", client.created.ResponseEngine.Type, tc.wantType)
			}
		})
	}
}

func TestCreate_ForwardsOptionalSettings(t *testing.T) {
	client := newRecordingClient()
	svc := NewAgentService(client, nil, 1)

	backchannel := true
	_, err := svc.Create(context.Background(), CreateAgentInput{
		AgentName:               "a",
		AmbientSound:            "coffee-shop",
		AmbientSoundVolume:      floatPtr(0.5),
		InterruptionSensitivity: floatPtr(0.8),
		Responsiveness:          floatPtr(1),
		EnableBackchannel:       &backchannel,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	cfg := client.created
	if cfg.AmbientSound == nil || *cfg.AmbientSound != "coffee-shop" {
		t.Fatalf("ambient sound not forwarded")
	}
	if *cfg.InterruptionSensitivity != 0.8 || *cfg.Responsiveness != 1 || !*cfg.EnableBackchannel {
		t.Fatalf("optional settings not forwarded: %+v", cfg)
	}
}

func TestCreate_RequiresName(t *testing.T) {
	svc := NewAgentService(newRecordingClient(), nil, 1)
	if _, err := svc.Create(context.Background(), CreateAgentInput{AgentName: "   "}); !errors.Is(err, entities.ErrInvalidAgent) {
		t.Fatalf("expected ErrInvalidAgent, got %v", err)
	}
}

func TestList_EnrichesAndToleratesLLMFailures(t *testing.T) {
	client := newRecordingClient()
	svc := NewAgentService(client, nil, 2)
	ctx := context.Background()

	broken, err := svc.Create(ctx, CreateAgentInput{AgentName: "Broken", GeneralPrompt: "be brief"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	client.failLLMFor = broken.LLMID

	agents, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(agents))
	}
	for _, a := range agents {
		switch a.AgentID {
		case retell.DemoAgentID:
			if a.GeneralPrompt == "" {
				t.Fatalf("demo agent should be enriched")
			}
		case broken.AgentID:
			if a.GeneralPrompt != "" {
				t.Fatalf("failed lookup should leave prompt empty, got %q", a.GeneralPrompt)
			}
		}
	}
	if client.llmLookups != 2 {
		t.Fatalf("expected 2 llm lookups, got %d", client.llmLookups)
	}
}

func TestUpdate_DropsNonUpdatableFields(t *testing.T) {
	client := newRecordingClient()
	svc := NewAgentService(client, nil, 1)

	out, err := svc.Update(context.Background(), retell.DemoAgentID, UpdateAgentInput{
		GeneralPrompt: strPtr("new prompt"),
		LLMID:         strPtr("llm_other"),
		AgentID:       strPtr("agent_other"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Message != MessageNoChanges {
		t.Fatalf("expected no-changes message, got %q", out.Message)
	}
	if len(client.patches) != 0 {
		t.Fatalf("platform must not be called with an empty patch")
	}
	if out.Agent.AgentID != retell.DemoAgentID {
		t.Fatalf("expected current agent back")
	}
}

func TestUpdate_AppliesPatch(t *testing.T) {
	client := newRecordingClient()
	svc := NewAgentService(client, nil, 1)

	out, err := svc.Update(context.Background(), retell.DemoAgentID, UpdateAgentInput{
		Patch:         entities.AgentPatch{AgentName: strPtr("Renamed")},
		GeneralPrompt: strPtr("ignored"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Message != MessageUpdated || out.Agent.AgentName != "Renamed" {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewAgentService(newRecordingClient(), nil, 1)
	err := svc.Delete(context.Background(), "agent_missing")
	if !retell.IsNotFound(err) {
		t.Fatalf("expected platform not found, got %v", err)
	}
}

func TestList_UsesPromptCache(t *testing.T) {
	client := newRecordingClient()
	prompts := cache.NewMemoryStore(0)
	defer prompts.Close()
	svc := NewAgentService(client, nil, 2, WithPromptCache(prompts, time.Minute))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateAgentInput{AgentName: "Cached", GeneralPrompt: "seeded"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 2; i++ {
		agents, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		for _, a := range agents {
			if a.GeneralPrompt == "" {
				t.Fatalf("agent %s not enriched", a.AgentID)
			}
			if a.AgentID == created.AgentID && a.GeneralPrompt != "seeded" {
				t.Fatalf("unexpected prompt %q", a.GeneralPrompt)
			}
		}
	}

	// Only the demo agent's LLM misses on the first listing.
	if client.llmLookups != 1 {
		t.Fatalf("expected 1 llm lookup, got %d", client.llmLookups)
	}
}
