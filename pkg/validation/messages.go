package validation

import (
	"fmt"
	"strings"
)

// Portuguese messages for the rules this service applies.
const (
	MsgNotBlank = "não deve estar em branco"
	MsgNotNull  = "não deve ser nulo"
	MsgPast     = "deve ser uma data passada"
	MsgEmail    = "deve ser um endereço de e-mail bem formado"
	MsgCPF      = "número do registro de contribuinte individual brasileiro (CPF) inválido"
	MsgDateFmt  = "deve estar no formato dd/MM/yyyy"
	MsgJSON     = "JSON malformado"
	MsgType     = "possui tipo inválido"
)

// MessageFor maps a validator tag to its catalog message.
func MessageFor(tag string) string {
	switch tag {
	case "required", "notblank":
		return MsgNotBlank
	case "notnull":
		return MsgNotNull
	case "past":
		return MsgPast
	case "email":
		return MsgEmail
	case "cpf":
		return MsgCPF
	default:
		return fmt.Sprintf("falhou na validação '%s'", tag)
	}
}

// Formatter renders violations as "Campo <name> <message>".
// DisplayNames overrides the rendered name of a field; other fields render
// their own key.
type Formatter struct {
	DisplayNames map[string]string
}

func NewFormatter(displayNames map[string]string) Formatter {
	return Formatter{DisplayNames: displayNames}
}

func (f Formatter) Message(v Violation) string {
	name := v.Field
	if dn, ok := f.DisplayNames[v.Field]; ok {
		name = dn
	}
	return fmt.Sprintf("Campo %s %s", name, v.Message)
}

// Format keeps the order of vs.
func (f Formatter) Format(vs []Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, f.Message(v))
	}
	return out
}

// ValidationError carries every formatted message of a rejected request.
type ValidationError struct {
	Mensagens []string `json:"mensagens"`
}

// NewValidationError formats vs with f.
func NewValidationError(f Formatter, vs []Violation) *ValidationError {
	return &ValidationError{Mensagens: f.Format(vs)}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Mensagens, "; ")
}
