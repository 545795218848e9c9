package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"coderfest/config"
	"coderfest/models"
)

type EmailService struct {
	host        string
	port        string
	username    string
	password    string
	from        string
	coordinator string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:        config.MailHost,
		port:        config.MailPort,
		username:    config.MailUsername,
		password:    config.MailPassword,
		from:        config.MailFrom,
		coordinator: config.MailCoordinator,
	}
}

// Configured reports whether an SMTP relay is set up. Without one the
// confirmation step is skipped entirely, registration still succeeds.
func (s *EmailService) Configured() bool {
	return s.host != ""
}

// SendRegistrationConfirmation emails the registration summary to the team
// leader, with the event coordinator in copy
func (s *EmailService) SendRegistrationConfirmation(reg models.Registration) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	var studentsHTML strings.Builder
	for i, student := range reg.Students {
		fmt.Fprintf(&studentsHTML, `
        <div style="background: #f9fafb; padding: 10px; margin: 10px 0; border-left: 3px solid #ea580c;">
            <p><strong>Student %d:</strong> %s</p>
            <p>Email: %s | Contact: %s</p>
        </div>`, i+1, student.Name, student.Email, student.Contact)
	}

	htmlTemplate := strings.TrimSpace(`
To: %s
Cc: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Registration Confirmed - Coder Fest 2025 | Team: %s

<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Registration Confirmed</title>
</head>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif; color: #333;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background: linear-gradient(135deg, #ea580c 0%%, #f97316 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
                <h1 style="color: #ffffff; margin: 0;">Registration Confirmed!</h1>
                <p style="color: #ffffff;">Coder Fest 2025</p>
            </td>
        </tr>
        <tr>
            <td style="background: #ffffff; padding: 30px; border: 1px solid #ddd;">
                <p style="color: #16a34a; font-weight: bold;">Your team has been successfully registered for Coder Fest 2025!</p>
                <div style="background: #fef3c7; padding: 15px; border-radius: 5px; margin: 20px 0;">
                    <h3 style="color: #ea580c;">Registration Details</h3>
                    <p><strong>Registration ID:</strong> %s</p>
                    <p><strong>Team Name:</strong> %s</p>
                    <p><strong>Team Leader:</strong> %s</p>
                    <p><strong>College:</strong> %s</p>
                    <p><strong>Contact:</strong> %s</p>
                </div>
                <h3 style="color: #ea580c;">Team Members</h3>
                %s
                <h3 style="color: #ea580c;">Event Details</h3>
                <p><strong>Date:</strong> %s</p>
                <p><strong>Venue:</strong> %s</p>
                <p><strong>Organized by:</strong> %s</p>
                <h3 style="color: #ea580c;">Important Notes</h3>
                <p>Save this email for your records. Further details will be shared closer to the event date. Bring your student ID cards on the event day.</p>
            </td>
        </tr>
        <tr>
            <td style="background: #f5f5f5; padding: 20px; text-align: center; border-radius: 0 0 10px 10px;">
                <p>Coder Fest 2025 - %s</p>
                <p style="font-size: 12px; color: #666;">This is an automated confirmation email</p>
            </td>
        </tr>
    </table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate,
		reg.LeaderEmail, s.coordinator, reg.TeamName,
		reg.RegistrationID, reg.TeamName, reg.LeaderName, reg.CollegeName, reg.LeaderContact,
		studentsHTML.String(),
		config.EventDate, config.EventVenue, config.EventOrganizer,
		config.EventOrganizer))

	recipients := []string{reg.LeaderEmail}
	if s.coordinator != "" {
		recipients = append(recipients, s.coordinator)
	}
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, recipients, msg)
}

// SendContactMessage relays a contact-form message to the event coordinator
func (s *EmailService) SendContactMessage(name, email, subject, message string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: [Coder Fest Contact] %s

<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2 style="color: #ea580c;">Contact form message</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <p><strong>Subject:</strong> %s</p>
    <hr>
    <p>%s</p>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate,
		s.coordinator, subject, name, email, subject, message))
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{s.coordinator}, msg)
}
