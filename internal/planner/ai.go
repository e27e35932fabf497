// internal/planner/ai.go
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/models"
)

var (
	ErrAITimeout          = errors.New("AI_TIMEOUT")
	ErrAIGenerationFailed = errors.New("AI_GENERATION_FAILED")
)

// AIClient calls a chat-completion backend to synthesize a personalized plan.
// The client is optional: without an API key, Configured reports false and the
// assembler skips this tier entirely.
type AIClient struct {
	config *Config
	client *http.Client
	logger logger.Logger
}

func NewAIClient(config *Config, log logger.Logger) *AIClient {
	return &AIClient{
		config: config,
		// No HTTP client timeout, rely only on context
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{
			"component": "ai-client",
		}),
	}
}

// Configured reports whether the backend can be called at all.
func (c *AIClient) Configured() bool {
	return c != nil && c.config.APIKey != "" && c.config.GenAIBaseURL != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate asks the backend for a full plan section set and parses the free
// text response. Missing sections come back empty; the assembler fills them
// from lower tiers.
func (c *AIClient) Generate(ctx context.Context, answers *models.FormAnswers) (*AIResult, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: backend not configured", ErrAIGenerationFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	body, _ := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPersona},
			{Role: "user", Content: buildPrompt(answers)},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	})

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Apply exponential backoff
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ErrAITimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.config.GenAIBaseURL+"/v1/chat/completions", bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

		resp, lastErr = c.client.Do(req)
		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}

		if ctx.Err() != nil {
			return nil, ErrAITimeout
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrAITimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrAIGenerationFailed, lastErr)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: no successful response after retries", ErrAIGenerationFailed)
	}
	defer resp.Body.Close()

	var apiResponse chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrAIGenerationFailed, err)
	}
	if len(apiResponse.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrAIGenerationFailed)
	}

	result := ParseResponse(apiResponse.Choices[0].Message.Content)

	c.logger.Info("AI plan sections generated", map[string]interface{}{
		"strategies": len(result.Strategies),
		"nextSteps":  len(result.NextSteps),
		"hasAdvice":  result.MessagingAdvice != "",
	})

	return result, nil
}

const systemPersona = "You are the Moxie High-Impact Launch Assistant, an expert in startup marketing and visibility strategies."

func buildPrompt(answers *models.FormAnswers) string {
	var parts []string

	parts = append(parts, "As a High-Impact Launch Assistant for Moxie, I need to create a personalized launch plan for a startup founder.")
	parts = append(parts, "\nAbout Moxie: We help bold, visionary founders who refuse to be ignored. Our tone is confident but warm, ambitious but down-to-earth, and we focus on high-impact strategies that actually move the needle.")

	parts = append(parts, "\nAbout the founder:")
	parts = append(parts, fmt.Sprintf("- Startup Name: %s", answers.StartupName))
	parts = append(parts, fmt.Sprintf("- Launch Type: %s", answers.LaunchType))
	parts = append(parts, fmt.Sprintf("- Funding Status: %s", answers.FundingStatus))
	parts = append(parts, fmt.Sprintf("- Primary Goal: %s", answers.PrimaryGoal))
	parts = append(parts, fmt.Sprintf("- Audience Readiness: %s", answers.AudienceReadiness))
	parts = append(parts, fmt.Sprintf("- Post-Launch Priority: %s", answers.PostLaunchPriority))
	parts = append(parts, fmt.Sprintf("- Messaging Validation Status: %s", answers.MessagingTested))

	parts = append(parts, "\nRespond in exactly three labeled sections:")
	parts = append(parts, "Messaging Advice: a short paragraph (2-3 sentences) about messaging validation.")
	parts = append(parts, "Recommended Strategies: 3 highly specific launch strategies numbered 1-3, each 1-2 sentences, focused on high-impact visibility and traction.")
	parts = append(parts, fmt.Sprintf("Next Steps: 3 specific post-launch actions numbered 1-3, each starting with an action verb, focused on \"%s\".", answers.PostLaunchPriority))

	parts = append(parts, "\nExample strategy format: \"Build a pre-launch email sequence that shares your founder story over 5 days, ending with exclusive early access for subscribers.\"")

	return strings.Join(parts, "\n")
}
