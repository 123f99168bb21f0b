package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCountsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/api/send-email", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/api/send-email", "500"))

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/api/send-email", "500"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, float64(0), testutil.ToFloat64(activeConnections))
}

func TestRecordContactEmail(t *testing.T) {
	before := testutil.ToFloat64(contactEmails.WithLabelValues("failed"))
	RecordContactEmail("failed")
	assert.Equal(t, before+1, testutil.ToFloat64(contactEmails.WithLabelValues("failed")))

	beforeErr := testutil.ToFloat64(integrationErrors.WithLabelValues("smtp", "SMTP_TIMEOUT"))
	RecordIntegrationError("smtp", "SMTP_TIMEOUT")
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(integrationErrors.WithLabelValues("smtp", "SMTP_TIMEOUT")))
}
