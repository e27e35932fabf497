// internal/leads/crm.go
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/common/metrics"
)

// CRMClient pushes captured leads to EngageBay as contacts. Sync failures are
// reported to the caller but the questionnaire flow treats them as non-fatal.
type CRMClient struct {
	apiKey     string
	baseURL    string
	source     string
	httpClient *http.Client
}

type contactProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type contactPayload struct {
	Properties []contactProperty `json:"properties"`
}

func NewCRMClient(apiKey, baseURL, source string) *CRMClient {
	if source == "" {
		source = "moxie-app"
	}
	return &CRMClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		source:  source,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether an API key is present. Without one, callers skip
// the sync entirely.
func (c *CRMClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

// SyncContact creates (or upserts, per EngageBay semantics) a contact with
// the lead's first name and email.
func (c *CRMClient) SyncContact(ctx context.Context, firstName, email string) error {
	payload := contactPayload{
		Properties: []contactProperty{
			{Name: "first_name", Value: firstName},
			{Name: "email", Value: email},
			{Name: "source", Value: c.source},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return stderrors.NewCRMSyncFailedError(fmt.Errorf("failed to marshal contact: %w", err))
	}

	url := fmt.Sprintf("%s/contacts", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return stderrors.NewCRMSyncFailedError(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("X-AUTH-TOKEN", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.CRMSyncFailures.Inc()
		return stderrors.NewCRMSyncFailedError(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		metrics.CRMSyncFailures.Inc()
		return stderrors.NewCRMSyncFailedError(fmt.Errorf("contact creation failed (status %d): %s", resp.StatusCode, string(body)))
	}
}
