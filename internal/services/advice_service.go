// internal/services/advice_service.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/guonaihong/gout"
	"github.com/sirupsen/logrus"

	"github.com/rmagrichem/agrichem-backend/internal/config"
)

// Fallback strings shown to the user instead of errors. The advisory
// collaborator must never fail past this boundary.
const (
	adviceUnavailable = "AI Service is unavailable. Please check API Key configuration."
	adviceEmpty       = "I couldn't generate a response at this time."
	adviceDegraded    = "I am having trouble connecting to the agricultural database right now. Please try again later."
)

const agronomistInstruction = `You are an expert AI Agronomist for RM Agrichem, a premium agricultural company.
Your goal is to assist farmers and investors with technical agricultural advice, crop protection strategies, and fertilizer usage.

Guidelines:
1. Be professional, empathetic, and scientific but accessible.
2. If the user asks about products, recommend generic types (e.g., "Use a systemic fungicide") unless you can infer a match from general agricultural knowledge.
3. Keep answers concise (under 150 words) unless detailed protocols are asked.
4. Always end with a disclaimer: "For specific product dosages and diagnosis, please consult a local agricultural officer."
`

// AdviceService proxies free-text questions to a Gemini-style
// generative text API.
type AdviceService struct {
	cfg *config.Config
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func NewAdviceService(cfg *config.Config) *AdviceService {
	return &AdviceService{cfg: cfg}
}

// GetAdvice returns the model's answer, or a fixed fallback string
// when the collaborator is unreachable or unconfigured.
func (s *AdviceService) GetAdvice(ctx context.Context, query string) string {
	if s.cfg.AI.APIKey == "" {
		return adviceUnavailable
	}

	req := generateRequest{
		SystemInstruction: &generateContent{
			Parts: []generatePart{{Text: agronomistInstruction}},
		},
		Contents: []generateContent{
			{Role: "user", Parts: []generatePart{{Text: query}}},
		},
	}
	req.GenerationConfig.Temperature = 0.7

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.cfg.AI.BaseURL, s.cfg.AI.Model)

	var resp generateResponse
	var code int
	err := gout.POST(endpoint).
		WithContext(ctx).
		SetQuery(gout.H{"key": s.cfg.AI.APIKey}).
		SetJSON(req).
		SetTimeout(time.Duration(s.cfg.AI.Timeout) * time.Second).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		logrus.WithError(err).Error("advice request failed")
		return adviceDegraded
	}
	if code != http.StatusOK {
		logrus.WithField("status", code).Error("advice request rejected")
		return adviceDegraded
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return adviceEmpty
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return adviceEmpty
	}
	return text
}
