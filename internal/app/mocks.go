package app

// MockEmailProvider используется для тестов и локальной разработки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, htmlBody string) error { return nil }

func (m *MockEmailProvider) SendInterviewInvitation(to, candidateName, jobTitle, interviewLink string) error {
	return nil
}
