// internal/services/advice_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmagrichem/agrichem-backend/internal/config"
)

func adviceFixture(baseURL string) *AdviceService {
	return NewAdviceService(&config.Config{
		AI: config.AIConfig{
			APIKey:  "test-key",
			BaseURL: baseURL,
			Model:   "gemini-2.5-flash-latest",
			Timeout: 5,
		},
	})
}

func TestGetAdviceWithoutAPIKey(t *testing.T) {
	svc := NewAdviceService(&config.Config{})

	reply := svc.GetAdvice(context.Background(), "How do I treat leaf rust?")
	assert.Equal(t, adviceUnavailable, reply)
}

func TestGetAdviceReturnsModelText(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Contains(t, r.URL.Path, ":generateContent")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "How do I treat leaf rust?", req.Contents[0].Parts[0].Text)
		require.NotNil(t, req.SystemInstruction)

		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content generateContent `json:"content"`
		}{
			Content: generateContent{
				Role:  "model",
				Parts: []generatePart{{Text: "Apply a systemic fungicide at first sign of pustules."}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer upstream.Close()

	svc := adviceFixture(upstream.URL)

	reply := svc.GetAdvice(context.Background(), "How do I treat leaf rust?")
	assert.Equal(t, "Apply a systemic fungicide at first sign of pustules.", reply)
}

func TestGetAdviceEmptyCandidates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer upstream.Close()

	svc := adviceFixture(upstream.URL)

	reply := svc.GetAdvice(context.Background(), "anything")
	assert.Equal(t, adviceEmpty, reply)
}

func TestGetAdviceUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	svc := adviceFixture(upstream.URL)

	reply := svc.GetAdvice(context.Background(), "anything")
	assert.Equal(t, adviceDegraded, reply)
}

func TestGetAdviceUnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	svc := adviceFixture(upstream.URL)

	reply := svc.GetAdvice(context.Background(), "anything")
	assert.Equal(t, adviceDegraded, reply)
}
