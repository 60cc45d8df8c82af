package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hireview_backend/internal/email"
	"hireview_backend/internal/logger"
	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

// InterviewService управляет жизненным циклом интервью: создание со
// случайным access-токеном, переходы статусов, документы и завершение.
type InterviewService struct {
	interviewRepo  repositories.InterviewRepository
	jobPostingRepo repositories.JobPostingRepository
	emailProvider  email.Provider
	publicURL      string
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	jobPostingRepo repositories.JobPostingRepository,
	emailProvider email.Provider,
	publicURL string,
) *InterviewService {
	return &InterviewService{
		interviewRepo:  interviewRepo,
		jobPostingRepo: jobPostingRepo,
		emailProvider:  emailProvider,
		publicURL:      publicURL,
	}
}

// CreateInterview создает интервью в статусе scheduled с новым uuid-токеном.
// Токен не пересоздается никогда: ссылка, отправленная кандидату, остается
// валидной на весь срок жизни интервью.
func (s *InterviewService) CreateInterview(ctx context.Context, companyID uint, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	posting, err := s.jobPostingRepo.FindByID(ctx, req.JobPostingID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrEntityNotFound("job posting", err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.CompanyID != companyID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	avatar := models.AvatarTypeHayato
	if req.AvatarType != "" {
		avatar = models.AvatarType(req.AvatarType)
	}

	interview := &models.Interview{
		JobPostingID:   req.JobPostingID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		InterviewURL:   uuid.NewString(),
		Status:         models.InterviewStatusScheduled,
		AvatarType:     avatar,
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.SendInvitation {
		link := fmt.Sprintf("%s/interview/%s", s.publicURL, interview.InterviewURL)
		if err := s.emailProvider.SendInterviewInvitation(req.CandidateEmail, req.CandidateName, posting.Title, link); err != nil {
			// Интервью уже создано, письмо можно переотправить вручную
			logger.CtxWarn(ctx, "failed to send interview invitation",
				"interview_id", interview.ID, "error", err)
		}
	}

	return dto.NewInterviewResponse(interview), nil
}

func (s *InterviewService) GetInterview(ctx context.Context, companyID uint, id uint) (*dto.InterviewResponse, error) {
	interview, err := s.findOwned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInterviewResponse(interview), nil
}

// GetInterviewByToken - кандидатский поток: доступ только по токену,
// без авторизации.
func (s *InterviewService) GetInterviewByToken(ctx context.Context, token string) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByURL(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewInterviewResponse(interview), nil
}

func (s *InterviewService) ListInterviewsByJobPosting(ctx context.Context, companyID, jobPostingID uint, limit, offset int) ([]dto.InterviewResponse, error) {
	posting, err := s.jobPostingRepo.FindByID(ctx, jobPostingID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrEntityNotFound("job posting", err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.CompanyID != companyID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	interviews, err := s.interviewRepo.FindByJobPosting(ctx, jobPostingID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toInterviewResponses(interviews), nil
}

func (s *InterviewService) ListInterviewsByCompany(ctx context.Context, companyID uint, limit, offset int) ([]dto.InterviewResponse, error) {
	interviews, err := s.interviewRepo.FindByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toInterviewResponses(interviews), nil
}

// UpdateStatusByToken переводит интервью в новый статус. Разрешены только
// переходы вперед: scheduled -> in_progress -> completed. Любая попытка
// двигаться назад или выйти из completed отклоняется как конфликт.
func (s *InterviewService) UpdateStatusByToken(ctx context.Context, token string, req *dto.UpdateInterviewStatusRequest) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByURL(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}

	next := models.InterviewStatus(req.Status)
	if !interview.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition(string(interview.Status), string(next))
	}

	interview.Status = next
	if next == models.InterviewStatusCompleted && interview.CompletedAt == nil {
		now := time.Now()
		interview.CompletedAt = &now
	}

	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewInterviewResponse(interview), nil
}

// AttachDocuments обновляет ссылки на документы кандидата частично:
// nil-поле означает "оставить как есть", пустая строка - стереть.
func (s *InterviewService) AttachDocuments(ctx context.Context, id uint, req *dto.AttachDocumentsRequest) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.ResumeURL != nil {
		interview.ResumeURL = req.ResumeURL
	}
	if req.CvURL != nil {
		interview.CvURL = req.CvURL
	}

	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewInterviewResponse(interview), nil
}

// CompleteInterview сохраняет запись и оценку и закрывает интервью.
// Повторный вызов для уже завершенного интервью перезаписывает payload
// (last write wins), это не ошибка.
func (s *InterviewService) CompleteInterview(ctx context.Context, id uint, req *dto.CompleteInterviewRequest) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}

	interview.RecordingURL = &req.RecordingURL
	interview.AIEvaluation = datatypes.JSON(req.AIEvaluation)
	interview.Status = models.InterviewStatusCompleted
	if interview.CompletedAt == nil {
		now := time.Now()
		interview.CompletedAt = &now
	}

	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewInterviewResponse(interview), nil
}

func (s *InterviewService) DeleteInterview(ctx context.Context, companyID uint, id uint) error {
	if _, err := s.findOwned(ctx, companyID, id); err != nil {
		return err
	}
	if err := s.interviewRepo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findOwned загружает интервью и проверяет, что его вакансия принадлежит
// компании вызывающего.
func (s *InterviewService) findOwned(ctx context.Context, companyID uint, id uint) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
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
	return interview, nil
}

func toInterviewResponses(interviews []models.Interview) []dto.InterviewResponse {
	result := make([]dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		result = append(result, *dto.NewInterviewResponse(&interviews[i]))
	}
	return result
}
