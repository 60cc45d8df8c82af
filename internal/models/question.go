package models

// BaseQuestion - фиксированный вопрос вакансии, задается каждому кандидату.
// Уникальность Order на уровне вакансии не навязывается схемой: набор
// заменяется целиком, а чтение сортирует по (order, id).
type BaseQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	JobPostingID uint   `gorm:"not null;index" json:"job_posting_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	Order        int    `gorm:"column:question_order;not null" json:"order"`
}

// CustomQuestion - вопрос, привязанный к одному интервью. Создается вручную
// или батчем генерации. Id-пространства base и custom вопросов независимы.
type CustomQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	InterviewID  uint   `gorm:"not null;index" json:"interview_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	Order        int    `gorm:"column:question_order;not null" json:"order"`
}
