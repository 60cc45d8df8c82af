package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const openaiURL = "https://api.openai.com/v1/chat/completions"

// OpenAI API структуры
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// OpenAIOracle вызывает Chat Completions API напрямую, без SDK.
type OpenAIOracle struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewOpenAIOracle(cfg Config) (*OpenAIOracle, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is not configured")
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIOracle{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: openaiURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (o *OpenAIOracle) GenerateQuestions(ctx context.Context, input GenerationInput) ([]string, error) {
	prompt := fmt.Sprintf(
		"You are preparing a structured job interview for the position %q.\n"+
			"Requirements:\n%s\n"+
			"The candidate submitted a resume (%s) and a CV (%s).\n"+
			"Write 5 interview questions tailored to this candidate. "+
			"Return one question per line, no numbering.",
		input.JobTitle, input.JobRequirements, input.ResumeURL, input.CvURL,
	)

	content, err := o.complete(ctx, prompt)
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

func (o *OpenAIOracle) ScoreTranscript(ctx context.Context, transcript []TranscriptEntry) (json.RawMessage, error) {
	var sb strings.Builder
	sb.WriteString("Evaluate the following interview transcript. " +
		"Respond with a single JSON object: " +
		`{"overall_score": <0-100>, "summary": "...", "strengths": [...], "concerns": [...]}` + "\n\n")
	for _, entry := range transcript {
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n\n", entry.Question, entry.Answer)
	}

	content, err := o.complete(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("model returned invalid JSON evaluation")
	}
	return json.RawMessage(content), nil
}

// complete делает один запрос к Chat Completions API.
func (o *OpenAIOracle) complete(ctx context.Context, prompt string) (string, error) {
	request := openAIRequest{
		Model: o.model,
		Messages: []openAIMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var response openAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("openai api error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
