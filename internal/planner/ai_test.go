// internal/planner/ai_test.go
package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"launch-assistant/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIClient_Configured(t *testing.T) {
	assert.False(t, NewAIClient(&Config{}, logger.NewTestLogger(t)).Configured())
	assert.False(t, NewAIClient(&Config{APIKey: "key"}, logger.NewTestLogger(t)).Configured())
	assert.True(t, NewAIClient(&Config{APIKey: "key", GenAIBaseURL: "http://localhost"}, logger.NewTestLogger(t)).Configured())
}

func TestAIClient_RetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Recommended Strategies:\n1. Retry strategy"}},
			},
		})
	}))
	defer server.Close()

	client := NewAIClient(&Config{
		GenAIBaseURL: server.URL,
		APIKey:       "test-key",
		Timeout:      5 * time.Second,
		MaxRetries:   2,
	}, logger.NewTestLogger(t))

	result, err := client.Generate(context.Background(), createTestAnswers())

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	require.Len(t, result.Strategies, 1)
	assert.Equal(t, "Retry strategy", result.RawStrategies[0])
}

func TestAIClient_TimeoutReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewAIClient(&Config{
		GenAIBaseURL: server.URL,
		APIKey:       "test-key",
		Timeout:      50 * time.Millisecond,
	}, logger.NewTestLogger(t))

	_, err := client.Generate(context.Background(), createTestAnswers())

	assert.ErrorIs(t, err, ErrAITimeout)
}

func TestAIClient_UnconfiguredRejectsCall(t *testing.T) {
	client := NewAIClient(&Config{}, logger.NewTestLogger(t))

	_, err := client.Generate(context.Background(), createTestAnswers())

	assert.ErrorIs(t, err, ErrAIGenerationFailed)
}

func TestAIClient_EmptyChoicesIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := NewAIClient(&Config{
		GenAIBaseURL: server.URL,
		APIKey:       "test-key",
		Timeout:      time.Second,
	}, logger.NewTestLogger(t))

	_, err := client.Generate(context.Background(), createTestAnswers())

	assert.ErrorIs(t, err, ErrAIGenerationFailed)
}
