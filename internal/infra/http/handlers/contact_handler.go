package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/voxelia/landing/internal/entity"
	"github.com/voxelia/landing/internal/infra/http/middleware"
)

const (
	msgEmailSent   = "Email sent successfully"
	msgEmailFailed = "Failed to send email"
)

type ContactSender interface {
	Execute(ctx context.Context, input entity.ContactSubmission) entity.DeliveryResult
}

type ContactHandler struct {
	sender       ContactSender
	maxBodyBytes int64
	logger       *slog.Logger
}

func NewContactHandler(sender ContactSender, maxBodyBytes int64, log *slog.Logger) *ContactHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ContactHandler{
		sender:       sender,
		maxBodyBytes: maxBodyBytes,
		logger:       log,
	}
}

type SendEmailResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SendEmail relays one contact submission. Every failure maps to the same
// 500 body; the cause only goes to the server log.
func (h *ContactHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.logger.DebugContext(ctx, "contact submission received", slog.String("state", "parsing"))

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	input, err := decodeSubmission(body)
	if err != nil {
		perr := &entity.ParseError{Code: "INVALID_JSON", Err: err}
		h.logger.ErrorContext(ctx, "error sending email",
			slog.String("state", "failed"),
			slog.String("code", perr.Code),
			slog.String("error", perr.Error()),
		)
		middleware.RecordContactEmail("failed")
		writeJSON(w, http.StatusInternalServerError, SendEmailResponse{Error: msgEmailFailed})
		return
	}

	res := h.sender.Execute(ctx, input)
	middleware.RecordContactEmail(res.String())
	if !res.OK() {
		middleware.RecordIntegrationError("smtp", entity.ErrorCode(res.Err()))
		writeJSON(w, http.StatusInternalServerError, SendEmailResponse{Error: msgEmailFailed})
		return
	}

	writeJSON(w, http.StatusOK, SendEmailResponse{Message: msgEmailSent})
}

// decodeSubmission accepts exactly one JSON object. Trailing data and a bare
// null are rejected.
func decodeSubmission(r io.Reader) (entity.ContactSubmission, error) {
	dec := json.NewDecoder(r)

	var input *entity.ContactSubmission
	if err := dec.Decode(&input); err != nil {
		return entity.ContactSubmission{}, err
	}
	if input == nil {
		return entity.ContactSubmission{}, errors.New("body is null")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return entity.ContactSubmission{}, errors.New("unexpected data after JSON object")
	}
	return *input, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
