package models

import (
	"time"

	"gorm.io/datatypes"
)

// Interview - сессия интервью кандидата по конкретной вакансии.
// InterviewURL - непубличный случайный токен, единственный идентификатор
// для кандидатского потока. Он уникален и неизменен после создания.
type Interview struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	JobPostingID   uint            `gorm:"not null;index" json:"job_posting_id"`
	CandidateName  string          `gorm:"not null" json:"candidate_name"`
	CandidateEmail string          `gorm:"not null" json:"candidate_email"`
	InterviewURL   string          `gorm:"uniqueIndex;not null" json:"interview_url"`
	Status         InterviewStatus `gorm:"not null" json:"status"`
	AvatarType     AvatarType      `json:"avatar_type"`

	ResumeURL    *string        `json:"resume_url,omitempty"`
	CvURL        *string        `json:"cv_url,omitempty"`
	RecordingURL *string        `json:"recording_url,omitempty"`
	AIEvaluation datatypes.JSON `gorm:"type:jsonb" json:"ai_evaluation,omitempty"`

	// Монотонный флаг false -> true, выставляется батчем генерации
	QuestionsGenerated bool       `gorm:"default:false" json:"questions_generated"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`

	JobPosting      JobPosting          `gorm:"foreignKey:JobPostingID" json:"-"`
	CustomQuestions []CustomQuestion    `gorm:"foreignKey:InterviewID" json:"-"`
	Responses       []InterviewResponse `gorm:"foreignKey:InterviewID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasDocuments сообщает, загружены ли оба документа, необходимые
// для генерации вопросов.
func (i *Interview) HasDocuments() bool {
	return i.ResumeURL != nil && *i.ResumeURL != "" && i.CvURL != nil && *i.CvURL != ""
}
