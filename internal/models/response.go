package models

import "time"

// InterviewResponse - ответ кандидата на вопрос. Вопрос идентифицируется
// парой (QuestionID, QuestionKind): id-пространства base и custom вопросов
// не пересекаются. QuestionText - денормализованный снимок, ответ остается
// читаемым даже после правки или удаления вопроса.
type InterviewResponse struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	InterviewID  uint         `gorm:"not null;index" json:"interview_id"`
	QuestionID   uint         `gorm:"not null" json:"question_id"`
	QuestionKind QuestionKind `gorm:"column:question_type;not null" json:"question_type"`
	QuestionText string       `gorm:"type:text;not null" json:"question_text"`
	AnswerText   string       `gorm:"type:text;not null" json:"answer_text"`

	// Выставляется сервером при записи, порядок листинга
	ResponseTime time.Time `gorm:"not null;index" json:"response_time"`

	Interview Interview `gorm:"foreignKey:InterviewID" json:"-"`
}
