package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"hireview_backend/internal/ai"
	"hireview_backend/internal/logger"
	"hireview_backend/internal/repositories"
	"hireview_backend/pkg/apperrors"
)

// EvaluationService прогоняет транскрипт интервью через оракул оценки
// и сохраняет полученный payload как есть.
type EvaluationService struct {
	interviewRepo  repositories.InterviewRepository
	responseRepo   repositories.ResponseRepository
	jobPostingRepo repositories.JobPostingRepository
	scorer         ai.EvaluationScorer
}

func NewEvaluationService(
	interviewRepo repositories.InterviewRepository,
	responseRepo repositories.ResponseRepository,
	jobPostingRepo repositories.JobPostingRepository,
	scorer ai.EvaluationScorer,
) *EvaluationService {
	return &EvaluationService{
		interviewRepo:  interviewRepo,
		responseRepo:   responseRepo,
		jobPostingRepo: jobPostingRepo,
		scorer:         scorer,
	}
}

// Evaluate строит транскрипт из записанных ответов, вызывает оракул
// и пишет оценку в интервью. Пустой транскрипт - precondition failure:
// оценивать нечего.
func (s *EvaluationService) Evaluate(ctx context.Context, companyID, interviewID uint) (datatypes.JSON, error) {
	interview, err := s.interviewRepo.FindByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}

	posting, err := s.jobPostingRepo.FindByID(ctx, interview.JobPostingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if posting.CompanyID != companyID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	responses, err := s.responseRepo.ListByInterview(ctx, interview.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(responses) == 0 {
		return nil, apperrors.ErrPreconditionFailed("interview", "no responses recorded yet")
	}

	transcript := make([]ai.TranscriptEntry, 0, len(responses))
	for _, r := range responses {
		transcript = append(transcript, ai.TranscriptEntry{
			Question: r.QuestionText,
			Answer:   r.AnswerText,
		})
	}

	evaluation, err := s.scorer.ScoreTranscript(ctx, transcript)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "interview evaluation")
	}

	interview.AIEvaluation = datatypes.JSON(evaluation)
	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "interview evaluated",
		"interview_id", interview.ID, "responses", len(responses))
	return interview.AIEvaluation, nil
}
