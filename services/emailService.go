package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

type EmailService struct {
	client *resend.Client
	from   string
	notify []string
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "Carmo <noreply@carmo.app>"
	}

	notify := strings.Split(os.Getenv("FEEDBACK_NOTIFY_EMAILS"), ",")
	recipients := make([]string, 0, len(notify))
	for _, r := range notify {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		log.Println("WARNING: FEEDBACK_NOTIFY_EMAILS not set. Feedback notifications disabled.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
		from:   from,
		notify: recipients,
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance, or nil
// when notifications are disabled.
func GetEmailService() *EmailService {
	return emailService
}

// SendFeedbackNotification emails the coordinators when a new meeting
// review comes in. The meeting may be the zero value when the feedback
// is about the group in general.
func (s *EmailService) SendFeedbackNotification(f models.Feedback, meeting models.Meeting) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	subject := fmt.Sprintf("New meeting feedback: %d/5", f.Rating)
	where := "the group in general"
	if meeting.Meeting_ID != "" {
		where = fmt.Sprintf("the meeting of %s at %s", meeting.Date, meeting.Address)
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #8b5a2b;">New feedback received</h2>
	<p>A member left feedback about %s.</p>
	<p><strong>Rating:</strong> %d/5</p>
	<p><strong>What went well:</strong><br>%s</p>
	<p><strong>What could improve:</strong><br>%s</p>
	<p><strong>Suggestions:</strong><br>%s</p>
	<hr>
	<p style="font-size: 12px; color: #666;">Sent automatically by the Carmo app.</p>
</body>
</html>`, where, f.Rating, f.Positives, f.Improvements, f.Suggestions)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      s.notify,
		Subject: subject,
		Html:    htmlBody,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send feedback notification: %v", err)
	}
	return nil
}
