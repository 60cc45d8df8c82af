package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpenAI поднимает сервер, отвечающий фиксированным содержимым
// в формате Chat Completions.
func fakeOpenAI(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestOracle(t *testing.T, serverURL string) *OpenAIOracle {
	t.Helper()
	oracle, err := NewOpenAIOracle(Config{APIKey: "test-key", TimeoutSeconds: 5})
	require.NoError(t, err)
	oracle.baseURL = serverURL
	return oracle
}

func TestOpenAIOracle_GenerateQuestions(t *testing.T) {
	t.Parallel()

	server := fakeOpenAI(t, "First question?\n\nSecond question?\nThird question?")
	defer server.Close()

	oracle := newTestOracle(t, server.URL)
	questions, err := oracle.GenerateQuestions(context.Background(), GenerationInput{
		JobTitle:        "Backend Engineer",
		JobRequirements: "Go",
		ResumeURL:       "/files/resume.pdf",
		CvURL:           "/files/cv.pdf",
	})
	require.NoError(t, err)

	// Пустые строки отбрасываются
	assert.Equal(t, []string{"First question?", "Second question?", "Third question?"}, questions)
}

func TestOpenAIOracle_ScoreTranscriptStripsFences(t *testing.T) {
	t.Parallel()

	server := fakeOpenAI(t, "```json\n{\"overall_score\": 72, \"summary\": \"ok\"}\n```")
	defer server.Close()

	oracle := newTestOracle(t, server.URL)
	evaluation, err := oracle.ScoreTranscript(context.Background(), []TranscriptEntry{
		{Question: "Q", Answer: "A"},
	})
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(evaluation, &payload))
	assert.EqualValues(t, 72, payload["overall_score"])
}

func TestOpenAIOracle_ScoreTranscriptRejectsGarbage(t *testing.T) {
	t.Parallel()

	server := fakeOpenAI(t, "sorry, I cannot evaluate this")
	defer server.Close()

	oracle := newTestOracle(t, server.URL)
	_, err := oracle.ScoreTranscript(context.Background(), []TranscriptEntry{{Question: "Q", Answer: "A"}})
	assert.Error(t, err)
}

func TestOpenAIOracle_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewOpenAIOracle(Config{})
	assert.Error(t, err)
}

func TestNewOracle_Providers(t *testing.T) {
	t.Parallel()

	oracle, err := NewOracle(Config{Provider: "stub"})
	require.NoError(t, err)
	assert.IsType(t, &StubOracle{}, oracle)

	oracle, err = NewOracle(Config{})
	require.NoError(t, err)
	assert.IsType(t, &StubOracle{}, oracle)

	_, err = NewOracle(Config{Provider: "watson"})
	assert.Error(t, err)
}
