// Package assistant asks a generative model for dental diagnosis suggestions.
// Input and output are validated against a fixed schema at this boundary.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"clinicapi/internal/config"
	"clinicapi/internal/model"
)

var (
	// ErrInvalidInput is returned when the patient history or chart markings are empty.
	ErrInvalidInput = errors.New("patient history and chart markings are required")
	// ErrInvalidOutput is returned when the model reply does not match the output schema.
	ErrInvalidOutput = errors.New("model returned an invalid suggestion")
	// ErrNotConfigured is returned when no API key is available.
	ErrNotConfigured = errors.New("diagnosis assistant is not configured")
)

const systemPrompt = `You are an AI-powered dental diagnosis assistant. Analyze the patient's dental history and current chart markings to suggest potential diagnoses and treatment options.`

const promptTemplate = `Patient History: %s
Chart Markings: %s

Based on the provided information, please provide potential diagnoses, suggested treatments, and a confidence level (high, medium, or low) for your suggestions.`

// contentGenerator is the subset of the GenAI models service used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Assistant produces diagnosis suggestions.
type Assistant struct {
	models contentGenerator
	model  string
}

// NewGenAI creates an Assistant backed by the Gemini API. Outgoing calls are traced.
func NewGenAI(ctx context.Context, cfg config.GenAIConfig) (*Assistant, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newAssistant(client.Models, cfg.Model), nil
}

func newAssistant(models contentGenerator, modelName string) *Assistant {
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &Assistant{models: models, model: modelName}
}

// Suggest validates the request, queries the model and validates its structured reply.
func (a *Assistant) Suggest(ctx context.Context, req model.DiagnosisRequest) (*model.DiagnosisSuggestion, error) {
	if strings.TrimSpace(req.PatientHistory) == "" || strings.TrimSpace(req.ChartMarkings) == "" {
		return nil, ErrInvalidInput
	}

	resp, err := a.models.GenerateContent(ctx, a.model,
		genai.Text(fmt.Sprintf(promptTemplate, req.PatientHistory, req.ChartMarkings)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    suggestionSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return nil, ErrInvalidOutput
	}
	return parseSuggestion(resp.Text())
}

var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"potentialDiagnoses": {
			Type:        genai.TypeString,
			Description: "A list of potential diagnoses based on the provided information.",
		},
		"suggestedTreatments": {
			Type:        genai.TypeString,
			Description: "A list of suggested treatment options for the potential diagnoses.",
		},
		"confidenceLevel": {
			Type:        genai.TypeString,
			Description: "A level of confidence in the AI diagnosis: high, medium, or low.",
			Enum:        []string{"high", "medium", "low"},
		},
	},
	Required: []string{"potentialDiagnoses", "suggestedTreatments", "confidenceLevel"},
}

func parseSuggestion(text string) (*model.DiagnosisSuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(text, "```")), "```")

	var out model.DiagnosisSuggestion
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	out.ConfidenceLevel = strings.ToLower(strings.TrimSpace(out.ConfidenceLevel))
	switch out.ConfidenceLevel {
	case "high", "medium", "low":
	default:
		return nil, fmt.Errorf("%w: confidence level %q", ErrInvalidOutput, out.ConfidenceLevel)
	}
	if strings.TrimSpace(out.PotentialDiagnoses) == "" || strings.TrimSpace(out.SuggestedTreatments) == "" {
		return nil, fmt.Errorf("%w: missing fields", ErrInvalidOutput)
	}
	return &out, nil
}
