package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireview_backend/internal/models"
)

func TestInterviewRepository_FindByURL(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	posting := seedPosting(t, db)
	seedInterview(t, db, posting.ID, "find-me")
	ctx := context.Background()

	found, err := repo.FindByURL(ctx, "find-me")
	require.NoError(t, err)
	assert.Equal(t, "Taro Yamada", found.CandidateName)

	_, err = repo.FindByURL(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrInterviewNotFound)
}

func TestInterviewRepository_FindByCompany(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	ctx := context.Background()

	posting := seedPosting(t, db)
	seedInterview(t, db, posting.ID, "company-1")

	// Вторая компания со своей вакансией и интервью
	other := &models.Company{Name: "Other " + t.Name()}
	require.NoError(t, db.Create(other).Error)
	otherPosting := &models.JobPosting{Title: "QA", CompanyID: other.ID}
	require.NoError(t, db.Create(otherPosting).Error)
	seedInterview(t, db, otherPosting.ID, "company-2")

	interviews, err := repo.FindByCompany(ctx, posting.CompanyID, 10, 0)
	require.NoError(t, err)
	require.Len(t, interviews, 1)
	assert.Equal(t, "company-1", interviews[0].InterviewURL)
}

func TestInterviewRepository_DeleteCascades(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewInterviewRepository(db)
	posting := seedPosting(t, db)
	interview := seedInterview(t, db, posting.ID, "cascade")
	ctx := context.Background()

	require.NoError(t, db.Create(&models.CustomQuestion{
		InterviewID: interview.ID, QuestionText: "q", Order: 1,
	}).Error)
	require.NoError(t, db.Create(&models.InterviewResponse{
		InterviewID:  interview.ID,
		QuestionID:   1,
		QuestionKind: models.QuestionKindCustom,
		QuestionText: "q",
		AnswerText:   "a",
		ResponseTime: time.Now(),
	}).Error)

	require.NoError(t, repo.Delete(ctx, interview.ID))

	var questions int64
	db.Model(&models.CustomQuestion{}).Where("interview_id = ?", interview.ID).Count(&questions)
	assert.Zero(t, questions)

	var responses int64
	db.Model(&models.InterviewResponse{}).Where("interview_id = ?", interview.ID).Count(&responses)
	assert.Zero(t, responses)

	_, err := repo.FindByID(ctx, interview.ID)
	assert.ErrorIs(t, err, ErrInterviewNotFound)
}

func TestJobPostingRepository_DeleteCascades(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewJobPostingRepository(db)
	posting := seedPosting(t, db)
	interview := seedInterview(t, db, posting.ID, "posting-cascade")
	ctx := context.Background()

	require.NoError(t, db.Create(&models.BaseQuestion{
		JobPostingID: posting.ID, QuestionText: "base", Order: 1,
	}).Error)
	require.NoError(t, db.Create(&models.CustomQuestion{
		InterviewID: interview.ID, QuestionText: "custom", Order: 1,
	}).Error)

	require.NoError(t, repo.Delete(ctx, posting.ID))

	var count int64
	db.Model(&models.BaseQuestion{}).Where("job_posting_id = ?", posting.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Interview{}).Where("job_posting_id = ?", posting.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.CustomQuestion{}).Where("interview_id = ?", interview.ID).Count(&count)
	assert.Zero(t, count)
}
