package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// Mailer define o contrato de envio de e-mails transacionais
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer implementa Mailer usando um servidor SMTP
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer cria um novo mailer SMTP
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send envia um e-mail HTML para o destinatário informado
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("erro ao enviar e-mail: %w", err)
	}
	return nil
}

// NoopMailer descarta todos os e-mails. Usado quando o SMTP não está configurado.
type NoopMailer struct{}

func (NoopMailer) Send(to, subject, htmlBody string) error { return nil }

// Dispatch envia o e-mail em segundo plano. Falhas de envio nunca afetam a
// operação que as originou, apenas geram log.
func Dispatch(m Mailer, log logger.Logger, to, subject, htmlBody string) {
	go func() {
		if err := m.Send(to, subject, htmlBody); err != nil {
			log.Error("Erro ao enviar notificação por e-mail", "to", to, "subject", subject, "error", err)
		}
	}()
}
