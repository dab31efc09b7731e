package mailer

import (
	"bytes"
	htmpl "html/template"
	texttpl "text/template"

	"github.com/oksasatya/nutricionistas-api/pkg/events"
)

const boasVindasSubject = "Cadastro de nutricionista confirmado"

var boasVindasText = texttpl.Must(texttpl.New("text").Parse(
	`Olá, {{.Nome}}!

Seu cadastro (CRN {{.CRN}}) foi registrado com sucesso sob o número {{.ID}}.
`))

var boasVindasHTML = htmpl.Must(htmpl.New("html").Parse(
	`<p>Olá, <strong>{{.Nome}}</strong>!</p>
<p>Seu cadastro (CRN {{.CRN}}) foi registrado com sucesso sob o número {{.ID}}.</p>
`))

// RenderBoasVindas renders the welcome message for a new record.
func RenderBoasVindas(ev events.NutricionistaCadastrado) (subject, text, html string, err error) {
	var tb, hb bytes.Buffer
	if err := boasVindasText.Execute(&tb, ev); err != nil {
		return "", "", "", err
	}
	if err := boasVindasHTML.Execute(&hb, ev); err != nil {
		return "", "", "", err
	}
	return boasVindasSubject, tb.String(), hb.String(), nil
}
