package services

import (
	"context"
	"errors"

	"hireview_backend/internal/ai"
	"hireview_backend/internal/logger"
	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

// QuestionService обслуживает оба пула вопросов: базовые вопросы вакансии
// и custom-вопросы конкретного интервью, плюс генерацию через оракул.
type QuestionService struct {
	questionRepo   repositories.QuestionRepository
	interviewRepo  repositories.InterviewRepository
	jobPostingRepo repositories.JobPostingRepository
	oracle         ai.QuestionGenerator
}

func NewQuestionService(
	questionRepo repositories.QuestionRepository,
	interviewRepo repositories.InterviewRepository,
	jobPostingRepo repositories.JobPostingRepository,
	oracle ai.QuestionGenerator,
) *QuestionService {
	return &QuestionService{
		questionRepo:   questionRepo,
		interviewRepo:  interviewRepo,
		jobPostingRepo: jobPostingRepo,
		oracle:         oracle,
	}
}

// --- Base questions ---

func (s *QuestionService) ListBaseQuestions(ctx context.Context, jobPostingID uint) ([]models.BaseQuestion, error) {
	if _, err := s.jobPostingRepo.FindByID(ctx, jobPostingID); err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrEntityNotFound("job posting", err)
		}
		return nil, apperrors.InternalError(err)
	}
	questions, err := s.questionRepo.ListBaseQuestions(ctx, jobPostingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return questions, nil
}

// ReplaceBaseQuestions заменяет весь набор базовых вопросов вакансии.
// Замена атомарна: либо новый набор целиком, либо старый без изменений.
func (s *QuestionService) ReplaceBaseQuestions(ctx context.Context, companyID, jobPostingID uint, req *dto.ReplaceBaseQuestionsRequest) ([]models.BaseQuestion, error) {
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

	questions := make([]models.BaseQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, models.BaseQuestion{
			JobPostingID: jobPostingID,
			QuestionText: q.QuestionText,
			Order:        q.Order,
		})
	}

	saved, err := s.questionRepo.ReplaceBaseQuestions(ctx, jobPostingID, questions)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

// --- Custom questions ---

func (s *QuestionService) ListCustomQuestions(ctx context.Context, companyID, interviewID uint) ([]models.CustomQuestion, error) {
	if _, err := s.findOwnedInterview(ctx, companyID, interviewID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListCustomQuestions(ctx, interviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return questions, nil
}

func (s *QuestionService) CreateCustomQuestion(ctx context.Context, companyID, interviewID uint, req *dto.CreateCustomQuestionRequest) (*models.CustomQuestion, error) {
	if _, err := s.findOwnedInterview(ctx, companyID, interviewID); err != nil {
		return nil, err
	}

	question := &models.CustomQuestion{
		InterviewID:  interviewID,
		QuestionText: req.QuestionText,
		Order:        req.Order,
	}
	if err := s.questionRepo.CreateCustomQuestion(ctx, question); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return question, nil
}

// UpdateCustomQuestion правит текст вопроса. Вопрос должен принадлежать
// указанному интервью, иначе запрос отклоняется без изменений.
func (s *QuestionService) UpdateCustomQuestion(ctx context.Context, companyID, interviewID, questionID uint, req *dto.UpdateCustomQuestionRequest) (*models.CustomQuestion, error) {
	if _, err := s.findOwnedInterview(ctx, companyID, interviewID); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindCustomQuestionByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repositories.ErrQuestionNotFound) {
			return nil, apperrors.ErrEntityNotFound("question", err)
		}
		return nil, apperrors.InternalError(err)
	}
	if question.InterviewID != interviewID {
		return nil, apperrors.ErrQuestionOwnership
	}

	updated, err := s.questionRepo.UpdateCustomQuestionText(ctx, questionID, req.QuestionText)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *QuestionService) DeleteCustomQuestion(ctx context.Context, companyID, interviewID, questionID uint) error {
	if _, err := s.findOwnedInterview(ctx, companyID, interviewID); err != nil {
		return err
	}
	question, err := s.questionRepo.FindCustomQuestionByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repositories.ErrQuestionNotFound) {
			return apperrors.ErrEntityNotFound("question", err)
		}
		return apperrors.InternalError(err)
	}
	if question.InterviewID != interviewID {
		return apperrors.ErrQuestionOwnership
	}

	if err := s.questionRepo.DeleteCustomQuestion(ctx, questionID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Generation ---

// GenerateQuestions запрашивает у оракула вопросы по документам кандидата
// и сохраняет их одним батчем. Порядок строгий: сначала внешний вызов,
// потом персист. Упавший оракул не оставляет следов в сторе.
func (s *QuestionService) GenerateQuestions(ctx context.Context, interviewID uint) ([]models.CustomQuestion, error) {
	interview, err := s.findInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if !interview.HasDocuments() {
		return nil, apperrors.ErrPreconditionFailed("interview", "resume and CV must be uploaded before generating questions")
	}

	posting, err := s.jobPostingRepo.FindByID(ctx, interview.JobPostingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	input := ai.GenerationInput{
		JobTitle:        posting.Title,
		JobRequirements: posting.Requirements,
		ResumeURL:       *interview.ResumeURL,
		CvURL:           *interview.CvURL,
	}
	texts, err := s.oracle.GenerateQuestions(ctx, input)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "question generation")
	}

	questions, err := s.questionRepo.CreateGeneratedQuestions(ctx, interview.ID, texts)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "generated interview questions",
		"interview_id", interview.ID, "count", len(questions))
	return questions, nil
}

// --- Composed candidate view ---

// ComposeQuestionsByToken собирает список вопросов для кандидата:
// базовые вопросы вакансии, затем custom-вопросы интервью. Внутри каждой
// группы порядок по order, затем по id.
func (s *QuestionService) ComposeQuestionsByToken(ctx context.Context, token string) ([]dto.ComposedQuestion, error) {
	interview, err := s.interviewRepo.FindByURL(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}

	base, err := s.questionRepo.ListBaseQuestions(ctx, interview.JobPostingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	custom, err := s.questionRepo.ListCustomQuestions(ctx, interview.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	composed := make([]dto.ComposedQuestion, 0, len(base)+len(custom))
	for _, q := range base {
		composed = append(composed, dto.ComposedQuestion{
			ID:           q.ID,
			Kind:         models.QuestionKindBase,
			QuestionText: q.QuestionText,
			Order:        q.Order,
		})
	}
	for _, q := range custom {
		composed = append(composed, dto.ComposedQuestion{
			ID:           q.ID,
			Kind:         models.QuestionKindCustom,
			QuestionText: q.QuestionText,
			Order:        q.Order,
		})
	}
	return composed, nil
}

func (s *QuestionService) findInterview(ctx context.Context, interviewID uint) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrEntityNotFound("interview", err)
		}
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

// findOwnedInterview дополнительно проверяет, что вакансия интервью
// принадлежит компании вызывающего.
func (s *QuestionService) findOwnedInterview(ctx context.Context, companyID, interviewID uint) (*models.Interview, error) {
	interview, err := s.findInterview(ctx, interviewID)
	if err != nil {
		return nil, err
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
