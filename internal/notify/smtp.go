package notify

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"carpool/pkg/config"
	"carpool/pkg/logger"
)

// Sender delivers a confirmation email with an attached calendar invite.
type Sender interface {
	Send(to, subject, htmlBody, icsContent string) error
}

type smtpSender struct {
	cfg *config.Config
	log *logger.Logger
}

func NewSMTPSender(cfg *config.Config) Sender {
	return &smtpSender{
		cfg: cfg,
		log: cfg.Log,
	}
}

func (s *smtpSender) Send(to, subject, htmlBody, icsContent string) error {
	// Without credentials we run in development mode: log instead of send.
	if s.cfg.SMTPHost == "" || s.cfg.SMTPPassword == "" {
		s.log.Info("SMTP not configured, skipping email delivery",
			"to", to,
			"subject", subject,
		)
		return nil
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	msg := buildMIMEMessage(s.cfg.SMTPFrom, to, subject, htmlBody, icsContent)

	if err := smtp.SendMail(addr, auth, s.cfg.SMTPFrom, []string{to}, msg); err != nil {
		s.log.Error("Failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.log.Info("Email sent successfully", "to", to, "subject", subject)
	return nil
}

const mimeBoundary = "carpool-mime-boundary"

func buildMIMEMessage(from, to, subject, htmlBody, icsContent string) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/mixed; boundary=" + mimeBoundary + "\r\n")
	b.WriteString("\r\n")

	b.WriteString("--" + mimeBoundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	b.WriteString("--" + mimeBoundary + "\r\n")
	b.WriteString("Content-Type: text/calendar; method=REQUEST; name=booking.ics\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString("Content-Disposition: attachment; filename=booking.ics\r\n")
	b.WriteString("\r\n")
	b.WriteString(base64.StdEncoding.EncodeToString([]byte(icsContent)))
	b.WriteString("\r\n")

	b.WriteString("--" + mimeBoundary + "--\r\n")

	return []byte(b.String())
}
