package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/voxelia/landing/internal/config"
	"github.com/voxelia/landing/internal/entity"
)

// Transport delivers a composed email. Exactly one attempt is made per call.
type Transport interface {
	Send(ctx context.Context, e *Email) entity.DeliveryResult
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	cfg  config.SMTP
	dial func(cfg config.SMTP) dialer
}

func NewEmailSender(cfg config.SMTP) *EmailSender {
	return &EmailSender{
		cfg:  cfg,
		dial: newGomailDialer,
	}
}

func newGomailDialer(cfg config.SMTP) dialer {
	d := gomail.NewDialer(cfg.Host, cfg.Port(), cfg.User, cfg.Password)
	if cfg.SSL {
		d.SSL = true
	}
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}
	return d
}

func (s *EmailSender) Send(ctx context.Context, e *Email) entity.DeliveryResult {
	if err := s.checkConfig(); err != nil {
		return entity.Failed(err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", e.Subject)
	for k, v := range e.Headers {
		if v != "" {
			m.SetHeader(k, v)
		}
	}
	if e.Text != "" {
		m.SetBody("text/plain", e.Text)
		m.AddAlternative("text/html", e.HTML)
	} else {
		m.SetBody("text/html", e.HTML)
	}

	// The request may go away but an accepted send is never aborted; only the
	// configured timeout bounds how long we wait for the relay. A send that
	// outlives the timeout keeps running and may still be delivered after we
	// report SMTP_TIMEOUT, so a client retry can produce a duplicate email.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeout)
	defer cancel()

	d := s.dial(s.cfg)
	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return entity.Failed(&entity.DeliveryError{
				Code: "SMTP_SEND_FAILED",
				Err:  fmt.Errorf("send via SMTP: %w", err),
			})
		}
		return entity.Delivered()
	case <-ctx.Done():
		return entity.Failed(&entity.DeliveryError{Code: "SMTP_TIMEOUT", Err: ctx.Err()})
	}
}

func (s *EmailSender) checkConfig() error {
	switch {
	case s.cfg.Host == "":
		return &entity.TransportConfigError{Code: "SMTP_HOST_MISSING", Message: "SMTP host is not set"}
	case s.cfg.Port() <= 0 || s.cfg.Port() > 65535:
		return &entity.TransportConfigError{
			Code:    "SMTP_PORT_INVALID",
			Message: "SMTP port is invalid",
			Err:     fmt.Errorf("port %q", s.cfg.RawPort),
		}
	case s.cfg.From == "":
		return &entity.TransportConfigError{Code: "SMTP_FROM_MISSING", Message: "sender address is not set"}
	case s.cfg.To == "":
		return &entity.TransportConfigError{Code: "SMTP_TO_MISSING", Message: "recipient address is not set"}
	case s.cfg.Timeout <= 0:
		return &entity.TransportConfigError{
			Code:    "SMTP_TIMEOUT_INVALID",
			Message: "SMTP timeout must be positive",
			Err:     errors.New(s.cfg.Timeout.String()),
		}
	}
	return nil
}
