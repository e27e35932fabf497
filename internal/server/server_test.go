// internal/server/server_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"launch-assistant/internal/catalog"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/email"
	"launch-assistant/internal/milestones"
	"launch-assistant/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type recordingProvider struct {
	lastTo string
	err    error
}

func (p *recordingProvider) Name() string { return "smtp" }

func (p *recordingProvider) Send(ctx context.Context, from, to, subject, htmlBody string) (string, error) {
	p.lastTo = to
	if p.err != nil {
		return "", p.err
	}
	return "<test-message-id>", nil
}

const competitiveFixture = `{
	"industries": {
		"SaaS": {
			"examples": [
				{
					"company": "Superhuman",
					"launch_year": 2017,
					"approach": "Invite-only exclusivity",
					"funding_at_launch": "Raised $1M-$3M",
					"key_strategies": ["Waitlist", "Onboarding calls"],
					"results": "High retention at launch",
					"launch_type": "New Startup/Product Launch"
				}
			]
		}
	},
	"launch_types": {"New Startup/Product Launch": ["Superhuman"]},
	"funding_levels": {"Raised $1M-$3M": ["Superhuman"]}
}`

func newTestServer(t *testing.T, provider email.Provider) *httptest.Server {
	t.Helper()

	log := logger.NewTestLogger(t)
	dir := t.TempDir()

	competitivePath := filepath.Join(dir, "competitive.json")
	require.NoError(t, os.WriteFile(competitivePath, []byte(competitiveFixture), 0o644))

	external := catalog.LoadExternal(filepath.Join(dir, "missing.json"), log)
	competitive := catalog.LoadCompetitive(competitivePath, log)
	ai := planner.NewAIClient(&planner.Config{}, log)
	assembler := planner.NewAssembler(external, ai, nil, log)
	engine := milestones.NewEngine(milestones.NewFileStore(filepath.Join(dir, "milestones.json"), log), log)

	var emailService *email.Service
	if provider != nil {
		emailService = email.NewService(&email.Config{DefaultFrom: "steph@moxie.app"}, provider, log)
	}

	srv := NewServer(assembler, engine, emailService, nil, nil, competitive, log)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", nil)
	require.Equal(t, http.StatusCreated, status)
	id, ok := body["session_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func completeAnswers() map[string]interface{} {
	return map[string]interface{}{
		"first_name":           "Ana",
		"startup_name":         "Acme",
		"email":                "ana@acme.io",
		"messaging_tested":     "No, I haven't tested it yet",
		"launch_type":          "New Startup/Product Launch",
		"funding_status":       "Bootstrapping (No external funding)",
		"primary_goal":         "Get Users or Customers",
		"audience_readiness":   "No, we're starting from scratch",
		"post_launch_priority": "Scaling & repeatable traction",
	}
}

// ==========================
// Session / Plan Tests
// ==========================

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createSession(t, ts)

	// Answers arrive step by step, the way the form submits them.
	status, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", map[string]interface{}{
		"first_name":   "Ana",
		"startup_name": "Acme",
		"email":        "ana@acme.io",
	})
	require.Equal(t, http.StatusOK, status)

	status, answers := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", completeAnswers())
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ana", answers["first_name"])
	assert.Equal(t, "ana@acme.io", answers["email"])

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["email_sent"])

	plan, ok := body["plan"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, plan["messaging_advice"], "validating your messaging")
	assert.Len(t, plan["strategies"], 3)
	assert.Equal(t, "static", plan["strategy_source"])
	assert.Equal(t, "generic", plan["next_step_source"])

	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, body["plan"])
}

func TestPatchAnswers_RejectsUnknownEnum(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", map[string]interface{}{
		"launch_type": "Something Else Entirely",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPatchAnswers_RejectsBadEmail(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", map[string]interface{}{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGeneratePlan_IncompleteAnswers(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createSession(t, ts)

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+id+"/plan", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotNil(t, body["error"])
}

func TestGetPlan_BeforeGeneration(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+id+"/plan", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUnknownSession(t *testing.T) {
	ts := newTestServer(t, nil)

	status, _ := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/nope/plan", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestResetSession(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", completeAnswers())
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+id+"/plan", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ==========================
// Milestone Endpoint Tests
// ==========================

func milestoneBody(name, date string) map[string]interface{} {
	return map[string]interface{}{
		"email":       "ana@acme.io",
		"name":        name,
		"date":        date,
		"description": "desc",
		"type":        "pre-launch",
	}
}

func TestMilestones_AddListDelete(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/milestones", milestoneBody("Press outreach", "2025-06-01"))
	require.Equal(t, http.StatusCreated, status)
	id, ok := body["id"].(string)
	require.True(t, ok)

	// An exact duplicate coalesces into the first record.
	status, body = doJSON(t, http.MethodPost, ts.URL+"/api/milestones", milestoneBody("Press outreach", "2025-06-01"))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, id, body["id"])

	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/milestones?email=ana@acme.io", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["milestones"], 1)

	status, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/milestones/%s?email=ana@acme.io", ts.URL, id), nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/milestones?email=ana@acme.io", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["milestones"])
}

func TestMilestones_AddValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing email", map[string]interface{}{"name": "x", "date": "2025-06-01"}},
		{"missing name", map[string]interface{}{"email": "ana@acme.io", "date": "2025-06-01"}},
		{"bad date", milestoneBody("x", "June 1st")},
		{"bad type", map[string]interface{}{"email": "ana@acme.io", "name": "x", "date": "2025-06-01", "type": "mid-launch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doJSON(t, http.MethodPost, ts.URL+"/api/milestones", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestMilestones_DeleteUnknown(t *testing.T) {
	ts := newTestServer(t, nil)

	status, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/milestones/nope?email=ana@acme.io", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMilestones_DedupeAndReset(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, date := range []string{"2025-06-01", "2025-06-08"} {
		status, _ := doJSON(t, http.MethodPost, ts.URL+"/api/milestones", milestoneBody("Checkpoint", date))
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/milestones/dedupe", map[string]interface{}{"email": "ana@acme.io"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["removed"])

	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/milestones/reset", map[string]interface{}{"email": "ana@acme.io"})
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/milestones?email=ana@acme.io", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["milestones"])
}

func TestCalendarLink(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/milestones", milestoneBody("Launch Day", "2025-06-01"))
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)

	status, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/milestones/calendar-link?email=ana@acme.io&id=%s", ts.URL, id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["url"], "dates=20250601%2F20250602")
}

func TestCalendarLink_EmptyCollection(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := doJSON(t, http.MethodGet, ts.URL+"/api/milestones/calendar-link?email=ana@acme.io", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "https://calendar.google.com", body["url"])
}

func TestSuggestedTimeline_FromQueryParams(t *testing.T) {
	ts := newTestServer(t, nil)

	url := ts.URL + "/api/milestones/suggested?launch_type=New+Startup%2FProduct+Launch&funding_status=Bootstrapping+%28No+external+funding%29"
	status, body := doJSON(t, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["milestones"], 6)
}

func TestSuggestedTimeline_RequiresInput(t *testing.T) {
	ts := newTestServer(t, nil)

	status, _ := doJSON(t, http.MethodGet, ts.URL+"/api/milestones/suggested", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

// ==========================
// Email / Competitive Tests
// ==========================

func TestSendEmail(t *testing.T) {
	provider := &recordingProvider{}
	ts := newTestServer(t, provider)
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", completeAnswers())
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/email", map[string]interface{}{"session_id": id})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "sent", body["status"])
	assert.Equal(t, "ana@acme.io", provider.lastTo)

	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["email_sent"])
}

func TestSendEmail_BeforePlan(t *testing.T) {
	ts := newTestServer(t, &recordingProvider{})
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodPost, ts.URL+"/api/email", map[string]interface{}{"session_id": id})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSendEmail_ProviderFailure(t *testing.T) {
	provider := &recordingProvider{err: errors.New("connection refused")}
	ts := newTestServer(t, provider)
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", completeAnswers())
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, http.MethodPost, ts.URL+"/api/email", map[string]interface{}{"session_id": id})
	assert.Equal(t, http.StatusBadGateway, status)

	status, body := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+id+"/plan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["email_sent"])
}

func TestGeneratePlan_WithEmailDelivery(t *testing.T) {
	provider := &recordingProvider{}
	ts := newTestServer(t, provider)
	id := createSession(t, ts)

	status, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/sessions/"+id+"/answers", completeAnswers())
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+id+"/plan", map[string]interface{}{"send_email": true})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["email_sent"])
	assert.Equal(t, "ana@acme.io", provider.lastTo)
}

func TestCompetitive(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := doJSON(t, http.MethodGet, ts.URL+"/api/competitive?industry=SaaS", nil)
	require.Equal(t, http.StatusOK, status)

	industries, ok := body["industries"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, industries, "SaaS")

	companies, ok := body["companies"].([]interface{})
	require.True(t, ok)
	require.Len(t, companies, 1)
	first := companies[0].(map[string]interface{})
	assert.Equal(t, "Superhuman", first["company"])

	takeaways, ok := body["takeaways"].([]interface{})
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(takeaways), 3)
}

func TestCompetitive_BadLimit(t *testing.T) {
	ts := newTestServer(t, nil)

	status, _ := doJSON(t, http.MethodGet, ts.URL+"/api/competitive?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
