package notify

import (
	"testing"
	"time"

	"github.com/uvcaspaces/booking-portal/internal/config"
)

type fakeSender struct {
	received chan Notification
}

func (s *fakeSender) Send(n Notification) error {
	s.received <- n
	return nil
}

func TestDispatchDelivers(t *testing.T) {
	sender := &fakeSender{received: make(chan Notification, 1)}
	d := NewDispatcher(sender)

	d.Dispatch(Notification{Name: "Ana", Email: "ana@example.com", Message: "hi"})

	select {
	case n := <-sender.received:
		if n.Name != "Ana" || n.Email != "ana@example.com" {
			t.Errorf("delivered wrong notification: %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestDispatchWithNilSender(t *testing.T) {
	d := NewDispatcher(nil)

	// Must neither block nor panic.
	for i := 0; i < 500; i++ {
		d.Dispatch(Notification{Name: "noop"})
	}
}

func TestDispatchDropsWhenQueueFull(t *testing.T) {
	block := make(chan struct{})
	sender := &blockingSender{block: block}
	d := NewDispatcher(sender)

	// The worker parks on the first notification; everything past the queue
	// capacity must be dropped without blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			d.Dispatch(Notification{Name: "flood"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
	close(block)
}

type blockingSender struct {
	block chan struct{}
}

func (s *blockingSender) Send(Notification) error {
	<-s.block
	return nil
}

func TestNewSMTPMailerRequiresSettings(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: "587"}
	if m := NewSMTPMailer(cfg); m != nil {
		t.Error("mailer created without SMTP_USER and MAIL_TO")
	}

	cfg.SMTPUser = "portal@example.com"
	cfg.MailTo = "staff@example.com"
	m := NewSMTPMailer(cfg)
	if m == nil {
		t.Fatal("mailer not created from complete settings")
	}
	if m.addr != "smtp.example.com:587" {
		t.Errorf("addr = %q, want smtp.example.com:587", m.addr)
	}
	if m.from != "portal@example.com" {
		t.Errorf("from fallback = %q, want SMTP user", m.from)
	}
}
