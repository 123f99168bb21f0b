package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelia/landing/internal/entity"
)

func TestComposeContact(t *testing.T) {
	msg := entity.NewContactMessage(entity.ContactSubmission{
		LastName:  "Durand",
		FirstName: "Camille",
		Phone:     "+33 6 12 34 56 78",
		Subject:   "Demande de devis",
		Message:   "Bonjour,\nje souhaite un devis.",
	})

	e, err := NewRenderer().Compose(msg)
	require.NoError(t, err)

	assert.Equal(t, "Nouveau message de contact: Demande de devis", e.Subject)
	assert.Equal(t, msg.ID, e.Headers[SubmissionIDHeader])
	assert.Contains(t, e.HTML, "<h2>Nouveau message de contact</h2>")
	assert.Contains(t, e.HTML, "<strong>Nom:</strong> Durand")
	assert.Contains(t, e.HTML, "Bonjour,<br>je souhaite un devis.")
	assert.Contains(t, e.Text, "Téléphone: +33 6 12 34 56 78")

	order := []string{"Nom:", "Prénom:", "Téléphone:", "Sujet:", "Message:"}
	last := -1
	for _, label := range order {
		idx := strings.Index(e.HTML, "<strong>"+label)
		require.NotEqual(t, -1, idx, label)
		assert.Greater(t, idx, last, label)
		last = idx
	}
}

func TestComposeEscapesUserInput(t *testing.T) {
	msg := entity.NewContactMessage(entity.ContactSubmission{
		LastName: `<img src=x onerror="alert(1)">`,
		Subject:  "hi",
		Message:  "<script>alert(1)</script>",
	})

	e, err := NewRenderer().Compose(msg)
	require.NoError(t, err)

	assert.NotContains(t, e.HTML, "<script>")
	assert.NotContains(t, e.HTML, "<img")
	assert.Contains(t, e.HTML, "&lt;script&gt;")
}

func TestComposeMissingFieldsRenderBlank(t *testing.T) {
	e, err := NewRenderer().Compose(entity.NewContactMessage(entity.ContactSubmission{}))
	require.NoError(t, err)

	assert.Equal(t, SubjectPrefix, e.Subject)
	assert.Contains(t, e.HTML, "<strong>Nom:</strong> </p>")
	assert.NotContains(t, e.HTML, "undefined")
}

func TestSubjectFlattensLineBreaks(t *testing.T) {
	assert.Equal(t, SubjectPrefix+"a Bcc: x@y.z", Subject("a\r\nBcc: x@y.z"))
}
