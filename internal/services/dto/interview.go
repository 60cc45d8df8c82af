package dto

import (
	"encoding/json"
	"time"

	"hireview_backend/internal/models"
)

// --- Interview Requests ---

type CreateInterviewRequest struct {
	JobPostingID   uint   `json:"job_posting_id" validate:"required"`
	CandidateName  string `json:"candidate_name" validate:"required,min=1,max=200"`
	CandidateEmail string `json:"candidate_email" validate:"required,email"`
	AvatarType     string `json:"avatar_type" validate:"omitempty,is-avatar-type"`
	SendInvitation bool   `json:"send_invitation"`
}

type UpdateInterviewStatusRequest struct {
	Status string `json:"status" validate:"required,is-interview-status"`
}

type AttachDocumentsRequest struct {
	ResumeURL *string `json:"resume_url,omitempty" validate:"omitempty,max=2000"`
	CvURL     *string `json:"cv_url,omitempty" validate:"omitempty,max=2000"`
}

type CompleteInterviewRequest struct {
	RecordingURL string          `json:"recording_url" validate:"required,max=2000"`
	AIEvaluation json.RawMessage `json:"ai_evaluation" validate:"required"`
}

// --- Interview Responses ---

type InterviewResponse struct {
	ID                 uint                   `json:"id"`
	JobPostingID       uint                   `json:"job_posting_id"`
	CandidateName      string                 `json:"candidate_name"`
	CandidateEmail     string                 `json:"candidate_email"`
	InterviewURL       string                 `json:"interview_url"`
	Status             models.InterviewStatus `json:"status"`
	AvatarType         models.AvatarType      `json:"avatar_type"`
	ResumeURL          *string                `json:"resume_url,omitempty"`
	CvURL              *string                `json:"cv_url,omitempty"`
	RecordingURL       *string                `json:"recording_url,omitempty"`
	AIEvaluation       json.RawMessage        `json:"ai_evaluation,omitempty"`
	QuestionsGenerated bool                   `json:"questions_generated"`
	CompletedAt        *time.Time             `json:"completed_at,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func NewInterviewResponse(i *models.Interview) *InterviewResponse {
	return &InterviewResponse{
		ID:                 i.ID,
		JobPostingID:       i.JobPostingID,
		CandidateName:      i.CandidateName,
		CandidateEmail:     i.CandidateEmail,
		InterviewURL:       i.InterviewURL,
		Status:             i.Status,
		AvatarType:         i.AvatarType,
		ResumeURL:          i.ResumeURL,
		CvURL:              i.CvURL,
		RecordingURL:       i.RecordingURL,
		AIEvaluation:       json.RawMessage(i.AIEvaluation),
		QuestionsGenerated: i.QuestionsGenerated,
		CompletedAt:        i.CompletedAt,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}
