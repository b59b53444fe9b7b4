// Package email delivers outbound mail for notification events.
package email

import (
	"gopkg.in/gomail.v2"

	"github.com/medhq/hms-api/pkg/circuitbreaker"
)

// Sender delivers a single message. The notification service consults the
// notification settings before calling it.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender sends mail through a gomail dialer.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

// NoopSender discards mail; used in tests and when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error { return nil }

// BreakerSender stops hammering a failing relay. While the breaker is open
// every send fails fast with circuitbreaker.ErrOpen.
type BreakerSender struct {
	inner   Sender
	breaker *circuitbreaker.CircuitBreaker
}

func NewBreakerSender(inner Sender, breaker *circuitbreaker.CircuitBreaker) *BreakerSender {
	return &BreakerSender{inner: inner, breaker: breaker}
}

func (s *BreakerSender) Send(to, subject, body string) error {
	return s.breaker.Execute(func() error {
		return s.inner.Send(to, subject, body)
	})
}
