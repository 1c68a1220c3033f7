package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
	"github.com/wneessen/go-mail"
)

// ErrDisabled is returned by Send when no sender credentials are configured
var ErrDisabled = errors.New("mailer disabled: sender credentials not set")

const sendTimeout = 30 * time.Second

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPMailer delivers HTML email over implicit TLS (SMTPS) with PLAIN auth
type SMTPMailer struct {
	cfg Config
}

func New(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Enabled() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

func (m *SMTPMailer) Send(ctx context.Context, email entity.Email) error {
	if !m.Enabled() {
		return ErrDisabled
	}

	msg, err := m.buildMessage(email)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) buildMessage(email entity.Email) (*mail.Msg, error) {
	if len(email.To) == 0 {
		return nil, errors.New("email has no recipients")
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Username); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, email.HTMLBody)

	return msg, nil
}
