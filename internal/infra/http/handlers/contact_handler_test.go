package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voxelia/landing/internal/entity"
	"github.com/voxelia/landing/internal/infra/mail"
	"github.com/voxelia/landing/internal/usecase"
)

type MockContactSender struct {
	mock.Mock
}

func (m *MockContactSender) Execute(ctx context.Context, input entity.ContactSubmission) entity.DeliveryResult {
	args := m.Called(ctx, input)
	return args.Get(0).(entity.DeliveryResult)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func postJSON(t *testing.T, h *ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.SendEmail(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

const validBody = `{"lastName":"Durand","firstName":"Camille","phone":"+33 6 12 34 56 78","subject":"Devis","message":"Bonjour"}`

func TestSendEmailSuccess(t *testing.T) {
	sender := new(MockContactSender)
	sender.On("Execute", mock.Anything, entity.ContactSubmission{
		LastName:  "Durand",
		FirstName: "Camille",
		Phone:     "+33 6 12 34 56 78",
		Subject:   "Devis",
		Message:   "Bonjour",
	}).Return(entity.Delivered()).Once()

	w := postJSON(t, NewContactHandler(sender, 1<<16, quietLogger()), validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, map[string]string{"message": "Email sent successfully"}, decodeBody(t, w))
	sender.AssertExpectations(t)
}

func TestSendEmailTransportFailureIsGeneric(t *testing.T) {
	causes := []error{
		&entity.TransportConfigError{Code: "SMTP_HOST_MISSING", Message: "SMTP host is not set"},
		&entity.DeliveryError{Code: "SMTP_SEND_FAILED", Err: errors.New("535 auth failed for relay@voxelia.fr")},
		&entity.DeliveryError{Code: "SMTP_TIMEOUT", Err: context.DeadlineExceeded},
	}

	for _, cause := range causes {
		sender := new(MockContactSender)
		sender.On("Execute", mock.Anything, mock.Anything).Return(entity.Failed(cause)).Once()

		w := postJSON(t, NewContactHandler(sender, 1<<16, quietLogger()), validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		raw := w.Body.String()
		assert.NotContains(t, raw, "535")
		assert.NotContains(t, raw, "SMTP")
		assert.Equal(t, map[string]string{"error": "Failed to send email"}, decodeBody(t, w))
	}
}

func TestSendEmailInvalidJSON(t *testing.T) {
	bodies := map[string]string{
		"not json":      "invalid json",
		"trailing text": `{"subject":"x"} this is not json`,
		"two objects":   `{"subject":"x"}{"subject":"y"}`,
		"null":          "null",
		"array":         `[{"subject":"x"}]`,
		"empty body":    "",
		"truncated":     `{"subject":"x"`,
		"numeric field": `{"phone":612345678}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			outbox := mail.NewOutbox()
			uc := usecase.NewSendContactEmailUseCase(mail.NewRenderer(), outbox, quietLogger())

			var logs bytes.Buffer
			h := NewContactHandler(uc, 1<<16, slog.New(slog.NewJSONHandler(&logs, nil)))
			w := postJSON(t, h, body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, map[string]string{"error": "Failed to send email"}, decodeBody(t, w))
			assert.Contains(t, logs.String(), "INVALID_JSON")
			assert.Empty(t, outbox.Sent())
		})
	}
}

func TestSendEmailTrailingWhitespaceAccepted(t *testing.T) {
	sender := new(MockContactSender)
	sender.On("Execute", mock.Anything, mock.Anything).Return(entity.Delivered()).Once()

	w := postJSON(t, NewContactHandler(sender, 1<<16, quietLogger()), validBody+"\n\t ")

	assert.Equal(t, http.StatusOK, w.Code)
	sender.AssertExpectations(t)
}

func TestSendEmailBodyTooLarge(t *testing.T) {
	sender := new(MockContactSender)
	body := `{"message":"` + strings.Repeat("a", 200) + `"}`

	w := postJSON(t, NewContactHandler(sender, 64, quietLogger()), body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	sender.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSendEmailMissingFieldsStillAttempted(t *testing.T) {
	outbox := mail.NewOutbox()
	uc := usecase.NewSendContactEmailUseCase(mail.NewRenderer(), outbox, quietLogger())

	w := postJSON(t, NewContactHandler(uc, 1<<16, quietLogger()), `{"subject":"Rappel","extra":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	sent := outbox.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Nouveau message de contact: Rappel", sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "<strong>Nom:</strong> </p>")
}

func TestSendEmailDuplicatesAreNotDeduplicated(t *testing.T) {
	outbox := mail.NewOutbox()
	uc := usecase.NewSendContactEmailUseCase(mail.NewRenderer(), outbox, quietLogger())
	h := NewContactHandler(uc, 1<<16, quietLogger())

	assert.Equal(t, http.StatusOK, postJSON(t, h, validBody).Code)
	assert.Equal(t, http.StatusOK, postJSON(t, h, validBody).Code)
	assert.Len(t, outbox.Sent(), 2)
}
