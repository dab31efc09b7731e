package application

import (
	"time"

	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
	"github.com/oksasatya/nutricionistas-api/pkg/validation"
)

// Field keys as they appear in the JSON payload and in violations.
const (
	FieldNome           = "nome"
	FieldCPF            = "cpf"
	FieldDataNascimento = "dataNascimento"
	FieldEmail          = "email"
	FieldCRN            = "crn"
)

// NutricionistaRequest is the registration payload.
type NutricionistaRequest struct {
	Nome           string        `json:"nome"`
	CPF            string        `json:"cpf"`
	DataNascimento *helpers.Date `json:"dataNascimento"`
	Email          string        `json:"email"`
	CRN            string        `json:"crn"`
}

// ToEntity builds the unsaved entity. Only call it on a validated request.
func (r NutricionistaRequest) ToEntity() *entity.Nutricionista {
	var nascimento time.Time
	if r.DataNascimento != nil {
		nascimento = r.DataNascimento.Time
	}
	return entity.NewNutricionista(r.Nome, r.CPF, nascimento, r.Email, r.CRN)
}

func (r NutricionistaRequest) hasDataNascimento() bool {
	return r.DataNascimento != nil && !r.DataNascimento.IsZero()
}

// Formatter renders the license number field as "CRN".
var Formatter = validation.NewFormatter(map[string]string{FieldCRN: "CRN"})

// Rules is the rule table for NutricionistaRequest. now and loc decide what
// "past" means for the birth date.
func Rules(now func() time.Time, loc *time.Location) validation.RuleSet[NutricionistaRequest] {
	return validation.RuleSet[NutricionistaRequest]{
		{Field: FieldNome, Message: validation.MessageFor("notblank"),
			Check: func(r NutricionistaRequest) bool { return validation.NotBlank(r.Nome) }},

		{Field: FieldCPF, Message: validation.MessageFor("notblank"),
			Check: func(r NutricionistaRequest) bool { return validation.NotBlank(r.CPF) }},
		{Field: FieldCPF, Message: validation.MessageFor("cpf"),
			Check: func(r NutricionistaRequest) bool { return validation.IsCPF(r.CPF) }},

		{Field: FieldDataNascimento, Message: validation.MessageFor("notnull"),
			Check: func(r NutricionistaRequest) bool { return r.hasDataNascimento() }},
		{Field: FieldDataNascimento, Message: validation.MessageFor("past"),
			Check: func(r NutricionistaRequest) bool { return r.DataNascimento.IsPast(now(), loc) }},

		{Field: FieldEmail, Message: validation.MessageFor("notblank"),
			Check: func(r NutricionistaRequest) bool { return validation.NotBlank(r.Email) }},
		{Field: FieldEmail, Message: validation.MessageFor("email"),
			Check: func(r NutricionistaRequest) bool { return validation.IsEmail(r.Email) }},

		{Field: FieldCRN, Message: validation.MessageFor("notblank"),
			Check: func(r NutricionistaRequest) bool { return validation.NotBlank(r.CRN) }},
	}
}
