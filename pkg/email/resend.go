package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

// SendOwnerLink, etkinlik sahibine yönetim linkini gönderir.
// Gönderim başarısız olursa sadece loglanır; etkinlik oluşturma akışını etkilemez.
func (s *EmailService) SendOwnerLink(to, eventName, ownerURL, guestURL string) {
	html := fmt.Sprintf(`
		<h2>%s</h2>
		<p>Your event is ready. Keep this email: the owner link below is the only way to manage your photos.</p>
		<p><strong>Owner link (private):</strong> <a href="%s">%s</a></p>
		<p><strong>Guest link (share with attendees):</strong> <a href="%s">%s</a></p>
	`, eventName, ownerURL, ownerURL, guestURL, guestURL)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: fmt.Sprintf("Your photo event: %s", eventName),
		Html:    html,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Warn("owner link email failed",
			zap.String("to", to),
			zap.String("event_name", eventName),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("owner link email sent",
		zap.String("to", to),
		zap.String("email_id", sent.Id),
	)
}
