package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/nutricionistas-api/pkg/events"
)

func TestRenderBoasVindas(t *testing.T) {
	subject, text, html, err := RenderBoasVindas(events.NutricionistaCadastrado{ID: 12, Nome: "Ana <Silva>", CRN: "CRN-3 1234"})
	require.NoError(t, err)

	assert.Equal(t, "Cadastro de nutricionista confirmado", subject)
	assert.Contains(t, text, "Olá, Ana <Silva>!")
	assert.Contains(t, text, "número 12")
	assert.Contains(t, html, "Ana &lt;Silva&gt;")
	assert.Contains(t, html, "CRN CRN-3 1234")
}

func TestMailgunConfigured(t *testing.T) {
	assert.False(t, (*Mailgun)(nil).Configured())
	assert.False(t, NewMailgun("mg.example.com", "", "noreply@example.com").Configured())
	assert.True(t, NewMailgun("mg.example.com", "key", "noreply@example.com").Configured())
}
