package gateway

import (
	"fmt"
	"net/smtp"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	customError "github.com/ayonpaul8906/trustbridge-new/pkg/errors"
)

// smtpMailer delivers mail over SMTP with STARTTLS.
type smtpMailer struct {
	host     string
	port     string
	user     string
	password string
}

func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
	}
}

func (m *smtpMailer) Send(toAddress, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.user, toAddress, subject, body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.user, []string{toAddress}, []byte(msg)); err != nil {
		return customError.WrapUpstreamUnavailable("mailer", err)
	}

	return nil
}
