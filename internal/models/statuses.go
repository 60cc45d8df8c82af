package models

type InterviewStatus string
type QuestionKind string
type AvatarType string

const (
	// Интервью создано, кандидат еще не начал
	InterviewStatusScheduled InterviewStatus = "scheduled"
	// Кандидат начал сессию
	InterviewStatusInProgress InterviewStatus = "in_progress"
	// Терминальный статус, выход из него запрещен
	InterviewStatusCompleted InterviewStatus = "completed"

	QuestionKindBase   QuestionKind = "base"
	QuestionKindCustom QuestionKind = "custom"

	AvatarTypeHayato AvatarType = "hayato" // male
	AvatarTypeErika  AvatarType = "erika"  // female
)

// ValidInterviewStatus проверяет, что строка является известным статусом.
func ValidInterviewStatus(s InterviewStatus) bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusInProgress, InterviewStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo определяет допустимые переходы статуса интервью:
// scheduled -> in_progress, in_progress -> completed, scheduled -> completed.
// Переходы назад и no-op переходы запрещены, completed - поглощающий.
func (s InterviewStatus) CanTransitionTo(next InterviewStatus) bool {
	switch s {
	case InterviewStatusScheduled:
		return next == InterviewStatusInProgress || next == InterviewStatusCompleted
	case InterviewStatusInProgress:
		return next == InterviewStatusCompleted
	default:
		return false
	}
}

// ValidQuestionKind проверяет тег типа вопроса.
func ValidQuestionKind(k QuestionKind) bool {
	return k == QuestionKindBase || k == QuestionKindCustom
}
