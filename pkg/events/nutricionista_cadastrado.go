package events

import (
	"time"

	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
)

// TypeNutricionistaCadastrado is the AMQP type of NutricionistaCadastrado messages.
const TypeNutricionistaCadastrado = "nutricionista.cadastrado"

// NutricionistaCadastrado is the JSON payload put on the RabbitMQ queue after a
// record is stored. It carries no CPF.
type NutricionistaCadastrado struct {
	ID             int64        `json:"id"`
	Nome           string       `json:"nome"`
	Email          string       `json:"email"`
	CRN            string       `json:"crn"`
	DataNascimento helpers.Date `json:"dataNascimento"`
	CadastradoEm   time.Time    `json:"cadastradoEm"`
}

func NewNutricionistaCadastrado(n *entity.Nutricionista) NutricionistaCadastrado {
	return NutricionistaCadastrado{
		ID:             n.ID,
		Nome:           n.Nome,
		Email:          n.Email,
		CRN:            n.CRN,
		DataNascimento: helpers.Date{Time: n.DataNascimento},
		CadastradoEm:   n.CreatedAt.UTC(),
	}
}
