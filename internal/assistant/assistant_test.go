package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"clinicapi/internal/config"
	"clinicapi/internal/model"
)

type fakeModels struct {
	reply    string
	err      error
	gotModel string
	gotText  string
	gotCfg   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = modelName
	f.gotCfg = cfg
	for _, c := range contents {
		for _, p := range c.Parts {
			f.gotText += p.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

var request = model.DiagnosisRequest{
	PatientHistory: "Grinds teeth at night.",
	ChartMarkings:  "Tooth 14: cavity",
}

func TestSuggest(t *testing.T) {
	fake := &fakeModels{reply: `{"potentialDiagnoses":"Caries on 14","suggestedTreatments":"Composite filling","confidenceLevel":"High"}`}
	a := newAssistant(fake, "test-model")

	got, err := a.Suggest(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, &model.DiagnosisSuggestion{
		PotentialDiagnoses:  "Caries on 14",
		SuggestedTreatments: "Composite filling",
		ConfidenceLevel:     "high",
	}, got)
	assert.Equal(t, "test-model", fake.gotModel)
	assert.True(t, strings.Contains(fake.gotText, "Grinds teeth at night."))
	assert.True(t, strings.Contains(fake.gotText, "Tooth 14: cavity"))
	assert.Equal(t, "application/json", fake.gotCfg.ResponseMIMEType)
	assert.ElementsMatch(t, []string{"potentialDiagnoses", "suggestedTreatments", "confidenceLevel"}, fake.gotCfg.ResponseSchema.Required)
}

func TestSuggest_InvalidInput(t *testing.T) {
	fake := &fakeModels{}
	a := newAssistant(fake, "")

	_, err := a.Suggest(context.Background(), model.DiagnosisRequest{PatientHistory: "x", ChartMarkings: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, fake.gotModel, "model must not be called")
}

func TestSuggest_ModelError(t *testing.T) {
	a := newAssistant(&fakeModels{err: errors.New("quota exceeded")}, "")

	_, err := a.Suggest(context.Background(), request)

	assert.EqualError(t, err, "generate content: quota exceeded")
}

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "fenced json", text: "```json\n{\"potentialDiagnoses\":\"a\",\"suggestedTreatments\":\"b\",\"confidenceLevel\":\"low\"}\n```", want: "low"},
		{name: "not json", text: "Potential Diagnoses: caries", wantErr: true},
		{name: "unknown confidence", text: `{"potentialDiagnoses":"a","suggestedTreatments":"b","confidenceLevel":"certain"}`, wantErr: true},
		{name: "missing field", text: `{"potentialDiagnoses":"a","confidenceLevel":"medium"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOutput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ConfidenceLevel)
		})
	}
}

func TestNewGenAI_RequiresKey(t *testing.T) {
	a, err := NewGenAI(context.Background(), config.GenAIConfig{})

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
