package validator

import (
	"log"

	"hireview_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила валидации,
// основанные на доменных перечислениях из models/statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка конфигурации приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-interview-status", validateInterviewStatus)
	mustRegister("is-question-kind", validateQuestionKind)
	mustRegister("is-avatar-type", validateAvatarType)
}

func validateInterviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	return models.ValidInterviewStatus(models.InterviewStatus(value))
}

func validateQuestionKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidQuestionKind(models.QuestionKind(value))
}

func validateAvatarType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.AvatarType(value) {
	case models.AvatarTypeHayato, models.AvatarTypeErika:
		return true
	default:
		return false
	}
}
