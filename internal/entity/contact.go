package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is the five-field record posted by the contact form.
// It only lives for one request/response cycle.
type ContactSubmission struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// MissingFields returns the JSON names of the empty fields, in form order.
// Like the browser's required constraint, whitespace counts as a value.
func (s ContactSubmission) MissingFields() []string {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"lastName", s.LastName},
		{"firstName", s.FirstName},
		{"phone", s.Phone},
		{"subject", s.Subject},
		{"message", s.Message},
	}
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// ContactMessage wraps a submission with the identifiers used while relaying it.
type ContactMessage struct {
	ID         string
	Submission ContactSubmission
	ReceivedAt time.Time
}

// Factory
func NewContactMessage(s ContactSubmission) *ContactMessage {
	return &ContactMessage{
		ID:         uuid.New().String(),
		Submission: s,
		ReceivedAt: time.Now(),
	}
}
