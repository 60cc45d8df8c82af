package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireview_backend/internal/models"
	"hireview_backend/internal/services/dto"
	"hireview_backend/pkg/apperrors"
)

func TestInterviewService_CreateInterview(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Acme Create")
	posting := env.seedPosting(t, company.ID)
	svc := env.interviewService()
	ctx := context.Background()

	first, err := svc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako Sato",
		CandidateEmail: "hanako@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.InterviewStatusScheduled, first.Status)
	assert.NotEmpty(t, first.InterviewURL)
	assert.False(t, first.QuestionsGenerated)
	assert.Equal(t, models.AvatarTypeHayato, first.AvatarType)

	// Токены разных интервью не совпадают
	second, err := svc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Jiro Suzuki",
		CandidateEmail: "jiro@example.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.InterviewURL, second.InterviewURL)
}

func TestInterviewService_CreateSendsInvitation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Acme Invite")
	posting := env.seedPosting(t, company.ID)
	svc := env.interviewService()

	_, err := svc.CreateInterview(context.Background(), company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako Sato",
		CandidateEmail: "hanako@example.com",
		SendInvitation: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hanako@example.com"}, env.email.invitations)
}

func TestInterviewService_CreateForeignPosting(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	owner := env.seedCompany(t, "Owner Co")
	intruder := env.seedCompany(t, "Intruder Co")
	posting := env.seedPosting(t, owner.ID)
	svc := env.interviewService()

	_, err := svc.CreateInterview(context.Background(), intruder.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "X",
		CandidateEmail: "x@example.com",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestInterviewService_StatusTransitions(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Acme Status")
	posting := env.seedPosting(t, company.ID)
	svc := env.interviewService()
	ctx := context.Background()

	created, err := svc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako",
		CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)
	token := created.InterviewURL

	// scheduled -> in_progress
	updated, err := svc.UpdateStatusByToken(ctx, token, &dto.UpdateInterviewStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, models.InterviewStatusInProgress, updated.Status)

	// назад нельзя
	_, err = svc.UpdateStatusByToken(ctx, token, &dto.UpdateInterviewStatusRequest{Status: "scheduled"})
	requireAppCode(t, err, apperrors.CodeInvalidTransition)

	// no-op тоже конфликт
	_, err = svc.UpdateStatusByToken(ctx, token, &dto.UpdateInterviewStatusRequest{Status: "in_progress"})
	requireAppCode(t, err, apperrors.CodeInvalidTransition)

	// in_progress -> completed, проставляется CompletedAt
	updated, err = svc.UpdateStatusByToken(ctx, token, &dto.UpdateInterviewStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, models.InterviewStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	// completed поглощающий
	for _, next := range []string{"scheduled", "in_progress", "completed"} {
		_, err = svc.UpdateStatusByToken(ctx, token, &dto.UpdateInterviewStatusRequest{Status: next})
		requireAppCode(t, err, apperrors.CodeInvalidTransition)
	}
}

func TestInterviewService_AttachDocumentsPartial(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Acme Docs")
	posting := env.seedPosting(t, company.ID)
	svc := env.interviewService()
	ctx := context.Background()

	created, err := svc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako",
		CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	resume := "/files/resume.pdf"
	updated, err := svc.AttachDocuments(ctx, created.ID, &dto.AttachDocumentsRequest{ResumeURL: &resume})
	require.NoError(t, err)
	require.NotNil(t, updated.ResumeURL)
	assert.Nil(t, updated.CvURL)

	// nil-поле не трогает уже сохраненный документ
	cv := "/files/cv.pdf"
	updated, err = svc.AttachDocuments(ctx, created.ID, &dto.AttachDocumentsRequest{CvURL: &cv})
	require.NoError(t, err)
	require.NotNil(t, updated.ResumeURL)
	assert.Equal(t, resume, *updated.ResumeURL)
	require.NotNil(t, updated.CvURL)
}

func TestInterviewService_CompleteLastWriteWins(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	company := env.seedCompany(t, "Acme Complete")
	posting := env.seedPosting(t, company.ID)
	svc := env.interviewService()
	ctx := context.Background()

	created, err := svc.CreateInterview(ctx, company.ID, &dto.CreateInterviewRequest{
		JobPostingID:   posting.ID,
		CandidateName:  "Hanako",
		CandidateEmail: "h@example.com",
	})
	require.NoError(t, err)

	first, err := svc.CompleteInterview(ctx, created.ID, &dto.CompleteInterviewRequest{
		RecordingURL: "/recordings/a.webm",
		AIEvaluation: json.RawMessage(`{"score": 3}`),
	})
	require.NoError(t, err)
	assert.Equal(t, models.InterviewStatusCompleted, first.Status)
	require.NotNil(t, first.CompletedAt)

	// Повторное завершение перезаписывает payload, CompletedAt сохраняется
	second, err := svc.CompleteInterview(ctx, created.ID, &dto.CompleteInterviewRequest{
		RecordingURL: "/recordings/b.webm",
		AIEvaluation: json.RawMessage(`{"score": 5}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "/recordings/b.webm", *second.RecordingURL)
	assert.JSONEq(t, `{"score": 5}`, string(second.AIEvaluation))
	assert.Equal(t, first.CompletedAt.Unix(), second.CompletedAt.Unix())
}

func TestInterviewService_GetByTokenNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.interviewService()

	_, err := svc.GetInterviewByToken(context.Background(), "missing-token")
	requireAppCode(t, err, apperrors.CodeNotFound)
}

// requireAppCode проверяет, что ошибка несет ожидаемый код.
func requireAppCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
