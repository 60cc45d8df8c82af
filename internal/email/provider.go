package email

// Provider определяет интерфейс для отправки писем кандидатам.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, htmlBody string) error

	// SendInterviewInvitation отправляет кандидату ссылку на интервью
	SendInterviewInvitation(to, candidateName, jobTitle, interviewLink string) error
}
