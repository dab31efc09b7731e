package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Cadastrados          prometheus.Counter
	ValidacoesRejeitadas prometheus.Counter
}

var metrics = newMetrics()

func newMetrics() *Metrics {
	return &Metrics{
		Cadastrados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nutricionistas_cadastrados_total",
			Help: "Total number of nutricionistas stored",
		}),
		ValidacoesRejeitadas: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nutricionistas_validacoes_rejeitadas_total",
			Help: "Total number of registration requests rejected by validation",
		}),
	}
}

func (m *Metrics) IncrementCadastrados() {
	m.Cadastrados.Inc()
}

func (m *Metrics) IncrementValidacoesRejeitadas() {
	m.ValidacoesRejeitadas.Inc()
}
