package mail

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/config"
)

// Mailer sends a plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a configured SMTP relay. When SMTP is not
// configured it logs the message instead of sending.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

// NewSMTPMailer creates the mailer.
func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send delivers a single message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if !m.cfg.Enabled() {
		m.logger.Info("mail not configured, would send",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
