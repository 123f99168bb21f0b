package handlers

import (
	"net/http"
	"time"

	"github.com/voxelia/landing/internal/config"
)

type HealthHandler struct {
	SMTP      config.SMTP
	DryRun    bool
	Version   string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(smtp config.SMTP, version string) *HealthHandler {
	return &HealthHandler{
		SMTP:      smtp,
		Version:   version,
		StartTime: time.Now(),
	}
}

// NewDryRunHealthHandler reports the in-memory outbox instead of the relay.
func NewDryRunHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		DryRun:    true,
		Version:   version,
		StartTime: time.Now(),
	}
}

// Handle never dials the relay. A missing SMTP setting marks the service
// degraded since every submission would fail.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)
	status := "healthy"

	switch {
	case h.DryRun:
		deps["outbox"] = "in-memory"
	case h.SMTP.Configured():
		deps["smtp"] = "configured"
	default:
		deps["smtp"] = "not configured"
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
