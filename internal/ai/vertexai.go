package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// VertexAIOracle wraps the Vertex AI Gemini API.
type VertexAIOracle struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewVertexAIOracle(cfg Config) (*VertexAIOracle, error) {
	if cfg.Project == "" {
		return nil, errors.New("vertexai project is not configured")
	}
	location := cfg.Location
	if location == "" {
		location = "us-central1"
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), cfg.Project, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(1024)

	return &VertexAIOracle{
		client: client,
		model:  model,
	}, nil
}

func (v *VertexAIOracle) GenerateQuestions(ctx context.Context, input GenerationInput) ([]string, error) {
	prompt := fmt.Sprintf(
		"You are preparing a structured job interview for the position %q.\n"+
			"Requirements:\n%s\n"+
			"The candidate submitted a resume (%s) and a CV (%s).\n"+
			"Write 5 interview questions tailored to this candidate. "+
			"Return one question per line, no numbering.",
		input.JobTitle, input.JobRequirements, input.ResumeURL, input.CvURL,
	)

	content, err := v.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var questions []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			questions = append(questions, line)
		}
	}
	if len(questions) == 0 {
		return nil, errors.New("model returned no questions")
	}
	return questions, nil
}

func (v *VertexAIOracle) ScoreTranscript(ctx context.Context, transcript []TranscriptEntry) (json.RawMessage, error) {
	var sb strings.Builder
	sb.WriteString("Evaluate the following interview transcript. " +
		"Respond with a single JSON object: " +
		`{"overall_score": <0-100>, "summary": "...", "strengths": [...], "concerns": [...]}` + "\n\n")
	for _, entry := range transcript {
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n\n", entry.Question, entry.Answer)
	}

	content, err := v.generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	if !json.Valid([]byte(content)) {
		return nil, errors.New("model returned invalid JSON evaluation")
	}
	return json.RawMessage(content), nil
}

func (v *VertexAIOracle) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := v.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response candidates returned")
	}

	var result string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			result += string(text)
		}
	}
	return result, nil
}

// Close closes the underlying client.
func (v *VertexAIOracle) Close() error {
	return v.client.Close()
}
