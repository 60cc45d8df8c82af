package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

// TranscriptEntry - одна пара вопрос/ответ из сессии интервью.
type TranscriptEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerationInput - контекст для генерации вопросов по документам кандидата.
type GenerationInput struct {
	JobTitle        string
	JobRequirements string
	ResumeURL       string
	CvURL           string
}

// QuestionGenerator - внешний оракул генерации вопросов. Вызов не должен
// иметь побочных эффектов в сторе: вызывающий персистит результат сам.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, input GenerationInput) ([]string, error)
}

// EvaluationScorer - внешний оракул оценки ответов кандидата.
// Возвращает свободный структурированный payload, который сохраняется как есть.
type EvaluationScorer interface {
	ScoreTranscript(ctx context.Context, transcript []TranscriptEntry) (json.RawMessage, error)
}

// Oracle объединяет оба вызова: реальные провайдеры реализуют оба.
type Oracle interface {
	QuestionGenerator
	EvaluationScorer
}

// Config - настройки провайдера оракула.
type Config struct {
	Provider       string // openai, vertexai, stub
	Model          string
	APIKey         string // openai
	Project        string // vertexai
	Location       string // vertexai
	TimeoutSeconds int
}

// NewOracle создает оракул по конфигурации.
func NewOracle(cfg Config) (Oracle, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIOracle(cfg)
	case "vertexai":
		return NewVertexAIOracle(cfg)
	case "stub", "":
		return NewStubOracle(), nil
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}
