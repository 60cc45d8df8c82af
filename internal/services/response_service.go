package services

import (
	"context"
	"errors"
	"time"

	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

// ResponseService записывает ответы кандидата и отдает транскрипт интервью.
type ResponseService struct {
	responseRepo   repositories.ResponseRepository
	interviewRepo  repositories.InterviewRepository
	questionRepo   repositories.QuestionRepository
	jobPostingRepo repositories.JobPostingRepository
}

func NewResponseService(
	responseRepo repositories.ResponseRepository,
	interviewRepo repositories.InterviewRepository,
	questionRepo repositories.QuestionRepository,
	jobPostingRepo repositories.JobPostingRepository,
) *ResponseService {
	return &ResponseService{
		responseRepo:   responseRepo,
		interviewRepo:  interviewRepo,
		questionRepo:   questionRepo,
		jobPostingRepo: jobPostingRepo,
	}
}

// RecordResponse сохраняет ответ кандидата. Вопрос должен существовать в
// своем пуле на момент записи, текст вопроса снимается в ответ как снимок.
// ResponseTime назначает сервер, клиентские таймстемпы не принимаются.
func (s *ResponseService) RecordResponse(ctx context.Context, interviewID uint, req *dto.CreateResponseRequest) (*models.InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}

	kind := models.QuestionKind(req.QuestionType)
	questionText, err := s.resolveQuestionText(ctx, interview, kind, req.QuestionID)
	if err != nil {
		return nil, err
	}

	response := &models.InterviewResponse{
		InterviewID:  interview.ID,
		QuestionID:   req.QuestionID,
		QuestionKind: kind,
		QuestionText: questionText,
		AnswerText:   req.AnswerText,
		ResponseTime: time.Now(),
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return response, nil
}

// ListResponses возвращает ответы интервью в порядке записи. Доступ только
// для компании, которой принадлежит вакансия интервью.
func (s *ResponseService) ListResponses(ctx context.Context, companyID, interviewID uint) ([]models.InterviewResponse, error) {
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
	return responses, nil
}

// resolveQuestionText проверяет существование вопроса в нужном пуле и
// возвращает его текущий текст для денормализации.
func (s *ResponseService) resolveQuestionText(ctx context.Context, interview *models.Interview, kind models.QuestionKind, questionID uint) (string, error) {
	switch kind {
	case models.QuestionKindBase:
		base, err := s.questionRepo.ListBaseQuestions(ctx, interview.JobPostingID)
		if err != nil {
			return "", apperrors.InternalError(err)
		}
		for _, q := range base {
			if q.ID == questionID {
				return q.QuestionText, nil
			}
		}
		return "", apperrors.ErrEntityNotFound("question", repositories.ErrQuestionNotFound)
	case models.QuestionKindCustom:
		question, err := s.questionRepo.FindCustomQuestionByID(ctx, questionID)
		if err != nil {
			if errors.Is(err, repositories.ErrQuestionNotFound) {
				return "", apperrors.ErrEntityNotFound("question", err)
			}
			return "", apperrors.InternalError(err)
		}
		if question.InterviewID != interview.ID {
			return "", apperrors.ErrQuestionOwnership
		}
		return question.QuestionText, nil
	default:
		return "", apperrors.NewBadRequestError("unknown question type")
	}
}
