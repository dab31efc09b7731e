package entity

import "time"

// Nutricionista is the aggregate root for the registration domain.
// ID is assigned by storage on insert and is zero until then.
type Nutricionista struct {
	ID             int64
	Nome           string
	CPF            string
	DataNascimento time.Time
	Email          string
	CRN            string
	CreatedAt      time.Time
}

// NewNutricionista builds an unsaved record. Callers validate the input first.
func NewNutricionista(nome, cpf string, dataNascimento time.Time, email, crn string) *Nutricionista {
	return &Nutricionista{
		Nome:           nome,
		CPF:            cpf,
		DataNascimento: dataNascimento,
		Email:          email,
		CRN:            crn,
	}
}

// Persisted reports whether storage has assigned an identifier.
func (n *Nutricionista) Persisted() bool {
	return n != nil && n.ID > 0
}
