// Package mailer wraps outbound SMTP delivery. A mock mode replaces the
// network call with a log line so the rest of the system can run without
// mail credentials.
package mailer

import (
	"context"
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Message is one outbound HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message. Implementations must be safe for use
// from a single worker goroutine.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config defines settings for the SMTP sender.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Mock     bool
}

// SMTP sends mail through a real relay using implicit TLS on port 465 (or
// STARTTLS on other ports, which gomail negotiates automatically).
type SMTP struct {
	dialer *gomail.Dialer
	from   string
	mock   bool
}

// New creates an SMTP sender.
func New(cfg Config) *SMTP {
	host := cfg.Host
	if host == "" {
		host = "smtp.mail.ru"
	}
	port := cfg.Port
	if port <= 0 {
		port = 465
	}
	d := gomail.NewDialer(host, port, cfg.User, cfg.Password)
	d.SSL = port == 465
	return &SMTP{dialer: d, from: cfg.User, mock: cfg.Mock}
}

// Send delivers msg, honoring context cancellation before the dial.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.mock {
		log.Printf("mailer mock: to=%s subject=%q (%d bytes html)", msg.To, msg.Subject, len(msg.HTML))
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}
