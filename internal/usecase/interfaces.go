package usecase

import (
	"context"

	"github.com/voxelia/landing/internal/entity"
	"github.com/voxelia/landing/internal/infra/mail"
)

type EmailComposer interface {
	Compose(msg *entity.ContactMessage) (*mail.Email, error)
}

type EmailTransport interface {
	Send(ctx context.Context, e *mail.Email) entity.DeliveryResult
}
