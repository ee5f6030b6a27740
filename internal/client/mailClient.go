package client

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"storefront-backend/internal/config"
)

// Mailer is the outbound email capability.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailerImpl struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Mail) Mailer {
	return &smtpMailerImpl{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailerImpl) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// WrapEmail puts the standard storefront frame around an email body.
func WrapEmail(text string) string {
	return fmt.Sprintf(`
	<div style="
		border: 1px solid black;
		padding: 20px;
		font-family: sans-serif;
		line-height: 2;
		font-size: 20px;
	">
		<h2>Hello There!</h2>
		<p>%s</p>
	</div>
	`, text)
}
