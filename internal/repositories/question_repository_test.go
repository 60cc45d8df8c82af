package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireview_backend/internal/models"
)

func TestQuestionRepository_ReplaceBaseQuestions(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuestionRepository(db)
	posting := seedPosting(t, db)
	ctx := context.Background()

	first, err := repo.ReplaceBaseQuestions(ctx, posting.ID, []models.BaseQuestion{
		{JobPostingID: posting.ID, QuestionText: "Tell me about yourself", Order: 1},
		{JobPostingID: posting.ID, QuestionText: "Why this company", Order: 2},
	})
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Повторная замена полностью вытесняет старый набор
	second, err := repo.ReplaceBaseQuestions(ctx, posting.ID, []models.BaseQuestion{
		{JobPostingID: posting.ID, QuestionText: "Describe a hard bug", Order: 1},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Describe a hard bug", second[0].QuestionText)

	all, err := repo.ListBaseQuestions(ctx, posting.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Старые id не выживают
	exists, err := repo.BaseQuestionExists(ctx, first[0].ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestQuestionRepository_ListBaseQuestionsOrdering(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuestionRepository(db)
	posting := seedPosting(t, db)
	ctx := context.Background()

	_, err := repo.ReplaceBaseQuestions(ctx, posting.ID, []models.BaseQuestion{
		{JobPostingID: posting.ID, QuestionText: "third", Order: 3},
		{JobPostingID: posting.ID, QuestionText: "first", Order: 1},
		{JobPostingID: posting.ID, QuestionText: "second", Order: 2},
	})
	require.NoError(t, err)

	questions, err := repo.ListBaseQuestions(ctx, posting.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "first", questions[0].QuestionText)
	assert.Equal(t, "second", questions[1].QuestionText)
	assert.Equal(t, "third", questions[2].QuestionText)
}

func TestQuestionRepository_CreateGeneratedQuestions(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuestionRepository(db)
	posting := seedPosting(t, db)
	interview := seedInterview(t, db, posting.ID, "token-gen")
	ctx := context.Background()

	require.False(t, interview.QuestionsGenerated)

	questions, err := repo.CreateGeneratedQuestions(ctx, interview.ID, []string{
		"What is your experience with Go?",
		"How do you test concurrent code?",
		"Describe your last project",
	})
	require.NoError(t, err)
	require.Len(t, questions, 3)

	// Порядок присваивается 1..N
	for i, q := range questions {
		assert.Equal(t, i+1, q.Order)
		assert.Equal(t, interview.ID, q.InterviewID)
	}

	// Флаг выставлен той же транзакцией
	var reloaded models.Interview
	require.NoError(t, db.First(&reloaded, interview.ID).Error)
	assert.True(t, reloaded.QuestionsGenerated)
}

func TestQuestionRepository_CustomQuestionOwnership(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuestionRepository(db)
	posting := seedPosting(t, db)
	a := seedInterview(t, db, posting.ID, "token-a")
	b := seedInterview(t, db, posting.ID, "token-b")
	ctx := context.Background()

	q := &models.CustomQuestion{InterviewID: a.ID, QuestionText: "custom", Order: 1}
	require.NoError(t, repo.CreateCustomQuestion(ctx, q))

	ok, err := repo.CustomQuestionExists(ctx, q.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CustomQuestionExists(ctx, q.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuestionRepository_DeleteCustomQuestion(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuestionRepository(db)
	posting := seedPosting(t, db)
	interview := seedInterview(t, db, posting.ID, "token-del")
	ctx := context.Background()

	q := &models.CustomQuestion{InterviewID: interview.ID, QuestionText: "to delete", Order: 1}
	require.NoError(t, repo.CreateCustomQuestion(ctx, q))

	require.NoError(t, repo.DeleteCustomQuestion(ctx, q.ID))
	assert.ErrorIs(t, repo.DeleteCustomQuestion(ctx, q.ID), ErrQuestionNotFound)
}
