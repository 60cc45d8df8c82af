package ai

import (
	"context"
	"encoding/json"
)

// StubOracle - провайдер по умолчанию для разработки и тестов: фиксированный
// список вопросов и нейтральная оценка, без сетевых вызовов.
type StubOracle struct{}

func NewStubOracle() *StubOracle {
	return &StubOracle{}
}

var stubQuestions = []string{
	"What do you consider your greatest professional strength?",
	"What was the most difficult challenge in your past experience?",
	"Why are you interested in this position?",
	"How do you approach working in a team?",
	"Where do you see your career in five years?",
}

func (s *StubOracle) GenerateQuestions(ctx context.Context, input GenerationInput) ([]string, error) {
	questions := make([]string, len(stubQuestions))
	copy(questions, stubQuestions)
	return questions, nil
}

func (s *StubOracle) ScoreTranscript(ctx context.Context, transcript []TranscriptEntry) (json.RawMessage, error) {
	payload := map[string]interface{}{
		"overall_score": 0,
		"summary":       "Automatic evaluation is not configured",
		"strengths":     []string{},
		"concerns":      []string{},
		"answered":      len(transcript),
	}
	return json.Marshal(payload)
}
