package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// SMTPSender отправляет письма через SMTP
// Без логина работает с локальными релеями (Mailpit)
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPSender создает отправителя; username пустой - без аутентификации
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	host = strings.TrimSpace(host)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@garage.local"
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
	}
}

// Send отправляет письмо
func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

// SMTPGateway доставляет уведомления письмом напрямую
type SMTPGateway struct {
	sender MailSender
}

// NewSMTPGateway создает транспорт поверх отправителя
func NewSMTPGateway(sender MailSender) *SMTPGateway {
	return &SMTPGateway{sender: sender}
}

// Send рендерит и отправляет письмо
// net/smtp не принимает контекст, поэтому проверяем его до отправки
func (g *SMTPGateway) Send(ctx context.Context, n domain.Notification) error {
	if n.Recipient == "" {
		return ErrEmptyRecipient
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	msg, err := Render(n)
	if err != nil {
		return err
	}

	if err := g.sender.Send(n.Recipient, msg.Subject, msg.Body); err != nil {
		return fmt.Errorf("%w: smtp %s: %v", ErrSend, n.Event, err)
	}
	return nil
}
