package dto

// CreateResponseRequest - запись ответа кандидата. Вопрос адресуется парой
// (question_id, question_type), потому что id-пространства base и custom
// вопросов независимы.
type CreateResponseRequest struct {
	QuestionID   uint   `json:"question_id" validate:"required"`
	QuestionType string `json:"question_type" validate:"required,is-question-kind"`
	AnswerText   string `json:"answer_text" validate:"required"`
}
