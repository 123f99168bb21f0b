package usecase

import (
	"context"
	"log/slog"

	"github.com/voxelia/landing/internal/entity"
	"github.com/voxelia/landing/internal/infra/mail"
	"github.com/voxelia/landing/internal/logger"
)

type SendContactEmailUseCase struct {
	Composer  EmailComposer
	Transport EmailTransport
	Logger    *slog.Logger
}

func NewSendContactEmailUseCase(composer EmailComposer, transport EmailTransport, log *slog.Logger) *SendContactEmailUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &SendContactEmailUseCase{
		Composer:  composer,
		Transport: transport,
		Logger:    log,
	}
}

// Execute composes one email from the submission and makes one delivery
// attempt. Blank fields are sent as-is; nothing is retried or deduplicated.
func (uc *SendContactEmailUseCase) Execute(ctx context.Context, input entity.ContactSubmission) entity.DeliveryResult {
	msg := entity.NewContactMessage(input)
	ctx = logger.WithSubmissionID(ctx, msg.ID)

	if missing := input.MissingFields(); len(missing) > 0 {
		uc.Logger.DebugContext(ctx, "submission has blank fields", slog.Any("fields", missing))
	}

	email, err := uc.Composer.Compose(msg)
	if err != nil {
		return uc.fail(ctx, &entity.DeliveryError{Code: "RENDER_FAILED", Err: err})
	}

	uc.Logger.DebugContext(ctx, "sending contact email", slog.String("state", "sending"))
	res := uc.Transport.Send(ctx, email)
	if !res.OK() {
		return uc.fail(ctx, res.Err())
	}

	uc.Logger.InfoContext(ctx, "contact email delivered", slog.String("state", "delivered"))
	return res
}

func (uc *SendContactEmailUseCase) fail(ctx context.Context, err error) entity.DeliveryResult {
	uc.Logger.ErrorContext(ctx, "error sending email",
		slog.String("state", "failed"),
		slog.String("code", entity.ErrorCode(err)),
		slog.String("error", err.Error()),
	)
	return entity.Failed(err)
}

// compile-time checks
var (
	_ EmailComposer  = (*mail.Renderer)(nil)
	_ EmailTransport = (*mail.EmailSender)(nil)
	_ EmailTransport = (*mail.Outbox)(nil)
)
