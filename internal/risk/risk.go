// Package risk produces an AI-written operational risk review of a simulated
// drilling program.
package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"google.golang.org/genai"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

const defaultModel = "gemini-2.5-flash"

// ErrNoAPIKey is returned when the analyzer is constructed without a key.
var ErrNoAPIKey = errors.New("gemini api key not configured")

// Analyzer reviews a simulation result and returns a narrative assessment.
type Analyzer interface {
	Analyze(ctx context.Context, result plan.SimulationResult) (string, error)
}

// GeminiAnalyzer asks a Gemini model for the review.
type GeminiAnalyzer struct {
	apiKey string
	model  string
}

func NewGeminiAnalyzer(apiKey string) *GeminiAnalyzer {
	return &GeminiAnalyzer{apiKey: apiKey, model: defaultModel}
}

// programSummary is the compact view of a result handed to the model: totals
// plus one entry per activity. Keeping it small keeps the prompt cheap.
type programSummary struct {
	TotalDays  string            `json:"totalDays"`
	TotalCost  string            `json:"totalCost"`
	MaxDepth   float64           `json:"maxDepth"`
	Activities []activitySummary `json:"activities"`
}

type activitySummary struct {
	Activity string  `json:"activity"`
	Duration string  `json:"duration"`
	Cost     float64 `json:"cost"`
}

// Analyze sends the program summary to Gemini and returns the narrative.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, result plan.SimulationResult) (string, error) {
	if a.apiKey == "" {
		return "", ErrNoAPIKey
	}

	summary := summarize(result)
	payload, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("marshal program summary: %w", err)
	}

	prompt := fmt.Sprintf(`You are a Senior Drilling Engineer. Analyze the following drilling program summary JSON.
Identify top 3 operational risks and suggest 1 cost optimization opportunity.
Keep it concise and professional.

Data: %s`, payload)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  a.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	response, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := response.Text()
	if text == "" {
		return "No analysis generated.", nil
	}
	return text, nil
}

func summarize(result plan.SimulationResult) programSummary {
	var maxDepth float64
	if len(result.TimeCurve) > 0 {
		maxDepth = result.TimeCurve[len(result.TimeCurve)-1].Depth
	}

	activities := make([]activitySummary, 0, len(result.Lines))
	for _, line := range result.Lines {
		activities = append(activities, activitySummary{
			Activity: line.Activity,
			Duration: fmt.Sprintf("%.1f hrs", line.CalculatedDuration),
			Cost:     math.Round(line.CalculatedCost),
		})
	}

	return programSummary{
		TotalDays:  fmt.Sprintf("%.1f", result.TotalTimeDays),
		TotalCost:  fmt.Sprintf("%.2fM USD", result.TotalCost/1e6),
		MaxDepth:   maxDepth,
		Activities: activities,
	}
}
