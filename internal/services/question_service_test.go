package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireview_backend/internal/ai"
	"hireview_backend/internal/models"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

func TestQuestionService_GenerateRequiresDocuments(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Gen Precondition")
	posting := env.seedPosting(t, company.ID)
	isvc := env.interviewService()
	qsvc := env.questionService(ai.NewStubOracle())
	ctx := context.Background()

	created, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako",
		CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	_, err = qsvc.GenerateQuestions(ctx, created.ID)
	requireAppCode(t, err, apperrors.CodePreconditionFailed)

	// Флаг не тронут
	reloaded, err := isvc.GetInterviewByToken(ctx, created.InterviewURL)
	require.NoError(t, err)
	assert.False(t, reloaded.QuestionsGenerated)
}

func TestQuestionService_GenerateOracleFailureLeavesNoTrace(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Gen Failure")
	posting := env.seedPosting(t, company.ID)
	isvc := env.interviewService()
	qsvc := env.questionService(failingOracle{})
	ctx := context.Background()

	created, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako",
		CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	resume, cv := "/files/resume.pdf", "/files/cv.pdf"
	_, err = isvc.AttachDocuments(ctx, created.ID, &dto.AttachDocumentsRequest{ResumeURL: &resume, CvURL: &cv})
	require.NoError(t, err)

	_, err = qsvc.GenerateQuestions(ctx, created.ID)
	requireAppCode(t, err, apperrors.CodeExternalServiceError)

	// Ни вопросов, ни флага
	var count int64
	env.db.Model(&models.CustomQuestion{}).Where("interview_id = ?", created.ID).Count(&count)
	assert.Zero(t, count)

	reloaded, err := isvc.GetInterviewByToken(ctx, created.InterviewURL)
	require.NoError(t, err)
	assert.False(t, reloaded.QuestionsGenerated)
}

func TestQuestionService_GenerateSuccess(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Gen Success")
	posting := env.seedPosting(t, company.ID)
	isvc := env.interviewService()
	qsvc := env.questionService(ai.NewStubOracle())
	ctx := context.Background()

	created, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako",
		CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	resume, cv := "/files/resume.pdf", "/files/cv.pdf"
	_, err = isvc.AttachDocuments(ctx, created.ID, &dto.AttachDocumentsRequest{ResumeURL: &resume, CvURL: &cv})
	require.NoError(t, err)

	questions, err := qsvc.GenerateQuestions(ctx, created.ID)
	require.NoError(t, err)
	require.NotEmpty(t, questions)

	for i, q := range questions {
		assert.Equal(t, i+1, q.Order)
		assert.NotEmpty(t, q.QuestionText)
	}

	reloaded, err := isvc.GetInterviewByToken(ctx, created.InterviewURL)
	require.NoError(t, err)
	assert.True(t, reloaded.QuestionsGenerated)
}

func TestQuestionService_ReplaceBaseQuestionsForeignPosting(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	owner := env.seedCompany(t, "Replace Owner")
	intruder := env.seedCompany(t, "Replace Intruder")
	posting := env.seedPosting(t, owner.ID)
	qsvc := env.questionService(ai.NewStubOracle())

	_, err := qsvc.ReplaceBaseQuestions(context.Background(), intruder.ID, posting.ID, &dto.ReplaceBaseQuestionsRequest{
		Questions: []dto.BaseQuestionInput{{QuestionText: "hi", Order: 1}},
	})
	requireAppCode(t, err, apperrors.CodeForbidden)
}

func TestQuestionService_DeleteCustomOwnershipMismatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Delete Ownership")
	posting := env.seedPosting(t, company.ID)
	isvc := env.interviewService()
	qsvc := env.questionService(ai.NewStubOracle())
	ctx := context.Background()

	a, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID: posting.ID, CandidateName: "A", CandidateEmail: "a@example.com",
	})
	require.NoError(t, err)
	b, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID: posting.ID, CandidateName: "B", CandidateEmail: "b@example.com",
	})
	require.NoError(t, err)

	question, err := qsvc.CreateCustomQuestion(ctx, company.ID, a.ID, &dto.CreateCustomQuestionRequest{
		QuestionText: "only for A", Order: 1,
	})
	require.NoError(t, err)

	// Удаление через чужое интервью отклоняется, вопрос остается
	err = qsvc.DeleteCustomQuestion(ctx, company.ID, b.ID, question.ID)
	requireAppCode(t, err, apperrors.CodeForbidden)

	remaining, err := qsvc.ListCustomQuestions(ctx, company.ID, a.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestQuestionService_ComposeByToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Compose")
	posting := env.seedPosting(t, company.ID)
	isvc := env.interviewService()
	qsvc := env.questionService(ai.NewStubOracle())
	ctx := context.Background()

	created, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID: posting.ID, CandidateName: "Hanako", CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	_, err = qsvc.ReplaceBaseQuestions(ctx, company.ID, posting.ID, &dto.ReplaceBaseQuestionsRequest{
		Questions: []dto.BaseQuestionInput{
			{QuestionText: "base two", Order: 2},
			{QuestionText: "base one", Order: 1},
		},
	})
	require.NoError(t, err)

	_, err = qsvc.CreateCustomQuestion(ctx, company.ID, created.ID, &dto.CreateCustomQuestionRequest{
		QuestionText: "custom one", Order: 1,
	})
	require.NoError(t, err)

	composed, err := qsvc.ComposeQuestionsByToken(ctx, created.InterviewURL)
	require.NoError(t, err)
	require.Len(t, composed, 3)

	// Сначала базовые по order, затем custom
	assert.Equal(t, "base one", composed[0].QuestionText)
	assert.Equal(t, models.QuestionKindBase, composed[0].Kind)
	assert.Equal(t, "base two", composed[1].QuestionText)
	assert.Equal(t, "custom one", composed[2].QuestionText)
	assert.Equal(t, models.QuestionKindCustom, composed[2].Kind)
}
