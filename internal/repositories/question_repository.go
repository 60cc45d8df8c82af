package repositories

import (
	"context"
	"errors"

	"hireview_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository interface {
	// Base questions (владелец - вакансия)
	ListBaseQuestions(ctx context.Context, jobPostingID uint) ([]models.BaseQuestion, error)
	ReplaceBaseQuestions(ctx context.Context, jobPostingID uint, questions []models.BaseQuestion) ([]models.BaseQuestion, error)
	BaseQuestionExists(ctx context.Context, id uint) (bool, error)

	// Custom questions (владелец - интервью)
	ListCustomQuestions(ctx context.Context, interviewID uint) ([]models.CustomQuestion, error)
	CreateCustomQuestion(ctx context.Context, question *models.CustomQuestion) error
	FindCustomQuestionByID(ctx context.Context, id uint) (*models.CustomQuestion, error)
	UpdateCustomQuestionText(ctx context.Context, id uint, text string) (*models.CustomQuestion, error)
	DeleteCustomQuestion(ctx context.Context, id uint) error
	CustomQuestionExists(ctx context.Context, id uint, interviewID uint) (bool, error)

	// Батч генерации: вставка вопросов и выставление флага одной транзакцией
	CreateGeneratedQuestions(ctx context.Context, interviewID uint, texts []string) ([]models.CustomQuestion, error)
}

type QuestionRepositoryImpl struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &QuestionRepositoryImpl{db: db}
}

// ListBaseQuestions возвращает вопросы вакансии, отсортированные по order;
// при равных order порядок стабилен за счет вторичной сортировки по id.
func (r *QuestionRepositoryImpl) ListBaseQuestions(ctx context.Context, jobPostingID uint) ([]models.BaseQuestion, error) {
	var questions []models.BaseQuestion
	err := r.db.WithContext(ctx).
		Where("job_posting_id = ?", jobPostingID).
		Order("question_order ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

// ReplaceBaseQuestions атомарно заменяет весь набор базовых вопросов
// вакансии: delete-all-then-insert в одной транзакции. При сбое остается
// старый набор целиком.
func (r *QuestionRepositoryImpl) ReplaceBaseQuestions(ctx context.Context, jobPostingID uint, questions []models.BaseQuestion) ([]models.BaseQuestion, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_posting_id = ?", jobPostingID).
			Delete(&models.BaseQuestion{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].JobPostingID = jobPostingID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.ListBaseQuestions(ctx, jobPostingID)
}

func (r *QuestionRepositoryImpl) BaseQuestionExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BaseQuestion{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepositoryImpl) ListCustomQuestions(ctx context.Context, interviewID uint) ([]models.CustomQuestion, error) {
	var questions []models.CustomQuestion
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("question_order ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepositoryImpl) CreateCustomQuestion(ctx context.Context, question *models.CustomQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *QuestionRepositoryImpl) FindCustomQuestionByID(ctx context.Context, id uint) (*models.CustomQuestion, error) {
	var question models.CustomQuestion
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepositoryImpl) UpdateCustomQuestionText(ctx context.Context, id uint, text string) (*models.CustomQuestion, error) {
	question, err := r.FindCustomQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	question.QuestionText = text
	if err := r.db.WithContext(ctx).Save(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (r *QuestionRepositoryImpl) DeleteCustomQuestion(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomQuestion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepositoryImpl) CustomQuestionExists(ctx context.Context, id uint, interviewID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CustomQuestion{}).
		Where("id = ? AND interview_id = ?", id, interviewID).
		Count(&count).Error
	return count > 0, err
}

// CreateGeneratedQuestions сохраняет сгенерированный батч: вопросы получают
// order 1..N в порядке возврата оракула, флаг questions_generated
// выставляется в той же транзакции. Либо пишется все, либо ничего.
func (r *QuestionRepositoryImpl) CreateGeneratedQuestions(ctx context.Context, interviewID uint, texts []string) ([]models.CustomQuestion, error) {
	created := make([]models.CustomQuestion, 0, len(texts))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, text := range texts {
			q := models.CustomQuestion{
				InterviewID:  interviewID,
				QuestionText: text,
				Order:        i + 1,
			}
			if err := tx.Create(&q).Error; err != nil {
				return err
			}
			created = append(created, q)
		}

		return tx.Model(&models.Interview{}).
			Where("id = ?", interviewID).
			Update("questions_generated", true).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
