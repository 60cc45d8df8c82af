package dto

import "hireview_backend/internal/models"

// --- Base questions ---

type BaseQuestionInput struct {
	QuestionText string `json:"question_text" validate:"required,min=1,max=2000"`
	Order        int    `json:"order" validate:"min=0"`
}

// ReplaceBaseQuestionsRequest - полный набор вопросов вакансии.
// Обновление всегда заменяет набор целиком, а не патчит отдельные строки.
type ReplaceBaseQuestionsRequest struct {
	Questions []BaseQuestionInput `json:"questions" validate:"required,dive"`
}

// --- Custom questions ---

type CreateCustomQuestionRequest struct {
	QuestionText string `json:"question_text" validate:"required,min=1,max=2000"`
	Order        int    `json:"order" validate:"min=0"`
}

type UpdateCustomQuestionRequest struct {
	QuestionText string `json:"question_text" validate:"required,min=1,max=2000"`
}

// --- Composed candidate view ---

// ComposedQuestion - один вопрос в списке, который видит кандидат:
// базовые вопросы вакансии, затем custom-вопросы интервью.
type ComposedQuestion struct {
	ID           uint                `json:"id"`
	Kind         models.QuestionKind `json:"kind"`
	QuestionText string              `json:"question_text"`
	Order        int                 `json:"order"`
}
