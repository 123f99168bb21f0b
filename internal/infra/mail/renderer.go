package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/voxelia/landing/internal/entity"
)

const SubjectPrefix = "Nouveau message de contact: "

const SubmissionIDHeader = "X-Submission-ID"

const contactHTML = `<h2>Nouveau message de contact</h2>
<p><strong>Nom:</strong> {{.LastName}}</p>
<p><strong>Prénom:</strong> {{.FirstName}}</p>
<p><strong>Téléphone:</strong> {{.Phone}}</p>
<p><strong>Sujet:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{nl2br .Message}}</p>
`

const contactText = `Nouveau message de contact

Nom: {{.LastName}}
Prénom: {{.FirstName}}
Téléphone: {{.Phone}}
Sujet: {{.Subject}}
Message:
{{.Message}}
`

var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Renderer turns a contact message into an Email. User input is escaped by
// html/template and the output is then restricted to the template's own tags.
type Renderer struct {
	html   *template.Template
	text   *texttemplate.Template
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("h2", "p", "strong", "br")

	return &Renderer{
		html: template.Must(template.New("contact.html").Funcs(template.FuncMap{
			"nl2br": nl2br,
		}).Parse(contactHTML)),
		text:   texttemplate.Must(texttemplate.New("contact.txt").Parse(contactText)),
		policy: policy,
	}
}

func (r *Renderer) Compose(msg *entity.ContactMessage) (*Email, error) {
	s := msg.Submission
	data := ContactEmailData{
		LastName:  s.LastName,
		FirstName: s.FirstName,
		Phone:     s.Phone,
		Subject:   s.Subject,
		Message:   s.Message,
	}

	var html bytes.Buffer
	if err := r.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	var text bytes.Buffer
	if err := r.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}

	return &Email{
		Subject: Subject(s.Subject),
		HTML:    r.policy.Sanitize(html.String()),
		Text:    text.String(),
		Headers: map[string]string{SubmissionIDHeader: msg.ID},
	}, nil
}

// Subject builds the mail subject. Line breaks are flattened so user input
// can't start a new header.
func Subject(subject string) string {
	return SubjectPrefix + headerBreaks.Replace(subject)
}

func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
