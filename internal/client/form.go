package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/voxelia/landing/internal/entity"
)

const SendEmailPath = "/api/send-email"

type State int

const (
	Idle State = iota
	Submitting
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

const (
	BannerSuccess = "Message envoyé avec succès !"
	BannerError   = "Une erreur est survenue. Veuillez réessayer."
)

var (
	ErrAlreadySubmitting = errors.New("a submission is already in flight")
	ErrSubmitFailed      = errors.New("submission failed")
)

type Field string

const (
	LastName  Field = "lastName"
	FirstName Field = "firstName"
	Phone     Field = "phone"
	Subject   Field = "subject"
	Message   Field = "message"
)

type Option func(*Form)

func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) { f.http = c }
}

// Form is the contact form: five editable fields and the submission state.
// One Form never has two submissions in flight.
type Form struct {
	mu       sync.Mutex
	fields   entity.ContactSubmission
	state    State
	endpoint string
	http     *http.Client
}

func NewForm(baseURL string, opts ...Option) *Form {
	f := &Form{
		endpoint: strings.TrimRight(baseURL, "/") + SendEmailPath,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case LastName:
		f.fields.LastName = value
	case FirstName:
		f.fields.FirstName = value
	case Phone:
		f.fields.Phone = value
	case Subject:
		f.fields.Subject = value
	case Message:
		f.fields.Message = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func (f *Form) SetFields(s entity.ContactSubmission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = s
}

func (f *Form) Fields() entity.ContactSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Banner is the text shown for the settled state. It stays until the next submit.
func (f *Form) Banner() string {
	switch f.State() {
	case Success:
		return BannerSuccess
	case Error:
		return BannerError
	default:
		return ""
	}
}

func (f *Form) Validate() ValidationErrors {
	return ValidateSubmission(f.Fields())
}

// Submit posts the current fields once. A 200 clears the fields and settles on
// Success; any other outcome settles on Error and keeps the fields for a retry.
// Empty required fields block the submission before any request is made.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return ErrAlreadySubmitting
	}
	if errs := ValidateSubmission(f.fields); len(errs) > 0 {
		f.mu.Unlock()
		return errs
	}
	f.state = Submitting
	payload := f.fields
	f.mu.Unlock()

	err := f.post(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Error
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	f.fields = entity.ContactSubmission{}
	f.state = Success
	return nil
}

func (f *Form) post(ctx context.Context, payload entity.ContactSubmission) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
