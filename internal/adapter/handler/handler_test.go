package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
	agentUsecase "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/agent"
	callUsecase "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/call"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/callhistory"
	phoneUsecase "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/phonenumber"
	"github.com/johnquangdev/voice-agent-dashboard/pkg/config"
	pkgvalidator "github.com/johnquangdev/voice-agent-dashboard/pkg/validator"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Info    string          `json:"info"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, client retell.Client) *echo.Echo {
	t.Helper()

	logger := zap.NewNop()
	e := echo.New()
	e.Validator = pkgvalidator.New()

	agentService := agentUsecase.NewAgentService(client, logger, 4)
	callService := callUsecase.NewCallService(client, callhistory.NewStore(), logger, 0)
	phoneService := phoneUsecase.NewPhoneNumberService(client, logger)

	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	cfg.Retell.UseMock = true

	NewRouter(cfg,
		NewAgentHandler(agentService, logger),
		NewCallHandler(callService, logger),
		NewPhoneNumberHandler(phoneService, logger),
	).Setup(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode body %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())
	rec, _ := do(t, e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"mock_vendor":true`) {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestAgents_ListAndCreate(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())

	rec, env := do(t, e, http.MethodGet, "/v1/agents", "")
	if rec.Code != http.StatusOK || !env.Success || env.Code != "HTTP_OK" {
		t.Fatalf("list: %d %+v", rec.Code, env)
	}
	if !strings.Contains(string(env.Data), retell.DemoAgentID) {
		t.Fatalf("demo agent missing from %s", env.Data)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/agents", `{"agent_name":"Support","general_prompt":"Be brief."}`)
	if rec.Code != http.StatusCreated || !env.Success {
		t.Fatalf("create: %d %+v", rec.Code, env)
	}
	var created struct {
		AgentID       string `json:"agent_id"`
		GeneralPrompt string `json:"general_prompt"`
		VoiceID       string `json:"voice_id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode agent: %v", err)
	}
	if created.GeneralPrompt != "Be brief." || created.VoiceID != agentUsecase.DefaultVoiceID {
		t.Fatalf("unexpected agent %+v", created)
	}

	rec, env = do(t, e, http.MethodGet, "/v1/agents/"+created.AgentID, "")
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), "Be brief.") {
		t.Fatalf("get: %d %s", rec.Code, env.Data)
	}
}

func TestAgents_CreateValidation(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())

	rec, env := do(t, e, http.MethodPost, "/v1/agents", `{"voice_id":"x"}`)
	if rec.Code != http.StatusBadRequest || env.Success || env.Code != "INVALID_ARGUMENT" {
		t.Fatalf("expected 400 INVALID_ARGUMENT, got %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/agents", `{"agent_name":`)
	if rec.Code != http.StatusBadRequest || env.Code != "INVALID_PAYLOAD" {
		t.Fatalf("expected 400 INVALID_PAYLOAD, got %d %+v", rec.Code, env)
	}
}

func TestAgents_UpdateAndDelete(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())
	path := "/v1/agents/" + retell.DemoAgentID

	rec, env := do(t, e, http.MethodPatch, path, `{"general_prompt":"ignored"}`)
	if rec.Code != http.StatusOK || env.Message != agentUsecase.MessageNoChanges {
		t.Fatalf("no-op update: %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodPatch, path, `{"agent_name":"Front Desk"}`)
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), "Front Desk") {
		t.Fatalf("update: %d %+v", rec.Code, env)
	}

	if rec, _ = do(t, e, http.MethodDelete, path, ""); rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
	rec, env = do(t, e, http.MethodDelete, path, "")
	if rec.Code != http.StatusNotFound || env.Code != "NOT_FOUND" {
		t.Fatalf("second delete: %d %+v", rec.Code, env)
	}
}

func TestCalls_Lifecycle(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())

	rec, env := do(t, e, http.MethodPost, "/v1/calls", `{"agent_id":"`+retell.DemoAgentID+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start: %d %+v", rec.Code, env)
	}
	var started struct {
		AccessToken string `json:"access_token"`
		CallID      string `json:"call_id"`
	}
	if err := json.Unmarshal(env.Data, &started); err != nil || started.AccessToken == "" {
		t.Fatalf("decode start: %v %s", err, env.Data)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/calls", `{"agent_id":"`+retell.DemoAgentID+`"}`)
	if rec.Code != http.StatusConflict || env.Code != "CALL_IN_PROGRESS" {
		t.Fatalf("second start: %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/calls/events", `{"event":"agentSpeaking"}`)
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), "Agent speaking...") {
		t.Fatalf("event: %d %+v", rec.Code, env)
	}
	rec, env = do(t, e, http.MethodPost, "/v1/calls/events", `{"event":"dancing"}`)
	if rec.Code != http.StatusBadRequest || env.Code != "UNKNOWN_EVENT" {
		t.Fatalf("unknown event: %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/calls/end", "")
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), `"status":"Completed"`) {
		t.Fatalf("end: %d %+v", rec.Code, env)
	}
	rec, env = do(t, e, http.MethodGet, "/v1/calls/status", "")
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), `"label":"Call ended"`) {
		t.Fatalf("status: %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodGet, "/v1/calls/"+started.CallID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("detail: %d %+v", rec.Code, env)
	}
	var detail struct {
		Duration            string `json:"duration"`
		TranscriptAvailable bool   `json:"transcript_available"`
		Turns               []struct {
			Speaker string `json:"speaker"`
			Text    string `json:"text"`
		} `json:"turns"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.Duration != "42s" || !detail.TranscriptAvailable || len(detail.Turns) != 3 {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if detail.Turns[1].Speaker != "user" {
		t.Fatalf("unexpected turn %+v", detail.Turns[1])
	}
}

func TestCalls_StartWithoutAgent(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())
	rec, env := do(t, e, http.MethodPost, "/v1/calls", `{}`)
	if rec.Code != http.StatusConflict || env.Code != "INVALID_STATE" {
		t.Fatalf("expected 409 INVALID_STATE, got %d %+v", rec.Code, env)
	}
}

func TestCalls_EndWithoutCall(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())
	rec, env := do(t, e, http.MethodPost, "/v1/calls/end", "")
	if rec.Code != http.StatusNotFound || env.Code != "NO_ACTIVE_CALL" {
		t.Fatalf("expected 404 NO_ACTIVE_CALL, got %d %+v", rec.Code, env)
	}
}

func TestCalls_ExportHistory(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())

	rec, env := do(t, e, http.MethodGet, "/v1/calls/history/export", "")
	if rec.Code != http.StatusConflict || env.Code != "EMPTY_HISTORY" {
		t.Fatalf("empty export: %d %+v", rec.Code, env)
	}

	do(t, e, http.MethodPost, "/v1/calls", `{"agent_id":"`+retell.DemoAgentID+`"}`)

	rec, _ = do(t, e, http.MethodGet, "/v1/calls/history/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export: %d %s", rec.Code, rec.Body.String())
	}
	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(disposition, `filename="call-logs-`) || !strings.HasSuffix(disposition, `.csv"`) {
		t.Fatalf("unexpected disposition %q", disposition)
	}
	lines := strings.Split(rec.Body.String(), "\n")
	if len(lines) != 2 || lines[0] != "Call ID,Timestamp,Agent,Status" || !strings.HasSuffix(lines[1], ",Demo Receptionist,Active") {
		t.Fatalf("unexpected csv %q", rec.Body.String())
	}

	rec, env = do(t, e, http.MethodGet, "/v1/calls/history", "")
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), `"total":1`) {
		t.Fatalf("history: %d %s", rec.Code, env.Data)
	}
}

func TestPhoneNumbers(t *testing.T) {
	e := newTestServer(t, retell.NewMockClient())

	rec, env := do(t, e, http.MethodPost, "/v1/phone-numbers/search", `{"area_code":"41"}`)
	if rec.Code != http.StatusBadRequest || env.Code != "INVALID_ARGUMENT" {
		t.Fatalf("bad area code: %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/phone-numbers", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty purchase: %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/phone-numbers", `{"area_code":"415"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("purchase: %d %+v", rec.Code, env)
	}
	var n struct {
		PhoneNumber string `json:"phone_number"`
		Assigned    bool   `json:"assigned"`
	}
	if err := json.Unmarshal(env.Data, &n); err != nil || n.Assigned {
		t.Fatalf("decode number: %v %s", err, env.Data)
	}

	rec, env = do(t, e, http.MethodPatch, "/v1/phone-numbers/"+n.PhoneNumber, `{"agent_id":"`+retell.DemoAgentID+`"}`)
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), `"assigned":true`) {
		t.Fatalf("assign: %d %+v", rec.Code, env)
	}

	rec, env = do(t, e, http.MethodPost, "/v1/phone-numbers/search", `{"area_code":"415"}`)
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), `"total":1`) {
		t.Fatalf("search: %d %s", rec.Code, env.Data)
	}

	if rec, _ = do(t, e, http.MethodDelete, "/v1/phone-numbers/"+n.PhoneNumber, ""); rec.Code != http.StatusOK {
		t.Fatalf("release: %d", rec.Code)
	}
}

func TestVendorUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	e := newTestServer(t, retell.NewClient(url, "key", 0, false))
	rec, env := do(t, e, http.MethodGet, "/v1/agents", "")
	if rec.Code != http.StatusServiceUnavailable || env.Code != "VENDOR_UNREACHABLE" {
		t.Fatalf("expected 503 VENDOR_UNREACHABLE, got %d %+v", rec.Code, env)
	}
}

func TestVendorRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_message":"Invalid API key"}`))
	}))
	defer srv.Close()

	e := newTestServer(t, retell.NewClient(srv.URL, "bad", 0, false))
	rec, env := do(t, e, http.MethodGet, "/v1/agents", "")
	if rec.Code != http.StatusBadGateway || env.Code != "VENDOR_REJECTED" || env.Message != "Invalid API key" {
		t.Fatalf("expected 502 with vendor message, got %d %+v", rec.Code, env)
	}
}
