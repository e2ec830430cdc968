package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/uvcaspaces/booking-portal/internal/config"
)

// Notification is the payload of the inquiry email sent to the site staff.
type Notification struct {
	Name          string
	Email         string
	Phone         string
	Service       string
	Message       string
	PreferredDate *time.Time
}

type Sender interface {
	Send(n Notification) error
}

// SMTPMailer delivers inquiry notifications over the configured SMTP
// account.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
	to   string
}

// NewSMTPMailer returns nil when the mail settings are absent; a nil
// mailer disables notifications without touching the inquiry flow.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.MailTo == "" {
		return nil
	}

	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	return &SMTPMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
		from: from,
		to:   cfg.MailTo,
	}
}

func (m *SMTPMailer) Send(n Notification) error {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", m.to)
	fmt.Fprintf(&b, "Subject: New contact inquiry from %s\r\n", n.Name)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Name: %s\n", n.Name)
	fmt.Fprintf(&b, "Email: %s\n", n.Email)
	if n.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", n.Phone)
	}
	if n.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", n.Service)
	}
	if n.PreferredDate != nil {
		fmt.Fprintf(&b, "Preferred date: %s\n", n.PreferredDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "\n%s\n", n.Message)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{m.to}, []byte(b.String()))
}
