package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	CompanyHandler    *CompanyHandler
	JobPostingHandler *JobPostingHandler
	InterviewHandler  *InterviewHandler
	QuestionHandler   *QuestionHandler
	ResponseHandler   *ResponseHandler
}
