package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireview_backend/internal/ai"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

func (e *testEnv) evaluationService(scorer ai.EvaluationScorer) *EvaluationService {
	return NewEvaluationService(e.repos.InterviewRepo, e.repos.ResponseRepo, e.repos.JobPostingRepo, scorer)
}

func TestEvaluationService_EmptyTranscript(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Eval Empty")
	posting := env.seedPosting(t, company.ID)
	isvc := env.interviewService()
	esvc := env.evaluationService(ai.NewStubOracle())
	ctx := context.Background()

	created, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID: posting.ID, CandidateName: "Hanako", CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	_, err = esvc.Evaluate(ctx, company.ID, created.ID)
	requireAppCode(t, err, apperrors.CodePreconditionFailed)
}

func TestEvaluationService_ScoresAndPersists(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Eval Score")
	posting := env.seedPosting(t, company.ID)
	isvc := env.interviewService()
	qsvc := env.questionService(ai.NewStubOracle())
	rsvc := env.responseService()
	esvc := env.evaluationService(ai.NewStubOracle())
	ctx := context.Background()

	created, err := isvc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID: posting.ID, CandidateName: "Hanako", CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	base, err := qsvc.ReplaceBaseQuestions(ctx, company.ID, posting.ID, &dto.ReplaceBaseQuestionsRequest{
		Questions: []dto.BaseQuestionInput{{QuestionText: "q1", Order: 1}},
	})
	require.NoError(t, err)

	_, err = rsvc.RecordResponse(ctx, created.ID, &dto.CreateResponseRequest{
		QuestionID: base[0].ID, QuestionType: "base", AnswerText: "answer",
	})
	require.NoError(t, err)

	evaluation, err := esvc.Evaluate(ctx, company.ID, created.ID)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(evaluation, &payload))
	assert.EqualValues(t, 1, payload["answered"])

	// Оценка сохранена в интервью
	reloaded, err := isvc.GetInterviewByToken(ctx, created.InterviewURL)
	require.NoError(t, err)
	assert.NotEmpty(t, reloaded.AIEvaluation)
}
