package email

import "fmt"

const invitationTemplate = `
<p>Hello %s,</p>
<p>You have been invited to an interview for the position <b>%s</b>.</p>
<p>Open the link below to start when you are ready. The link is personal, please do not share it.</p>
<p><a href="%s">%s</a></p>
`

func renderInvitation(candidateName, jobTitle, interviewLink string) (subject, body string) {
	subject = fmt.Sprintf("Interview invitation: %s", jobTitle)
	body = fmt.Sprintf(invitationTemplate, candidateName, jobTitle, interviewLink, interviewLink)
	return subject, body
}
