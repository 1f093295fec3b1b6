package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderRequests conta chamadas a provedores externos por resultado
	// (sucesso, vazio ou erro).
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pedidomestre",
		Subsystem: "provider",
		Name:      "requests_total",
		Help:      "Total de chamadas a provedores externos",
	}, []string{"provedor", "resultado"})

	// ProviderRetries conta novas tentativas disparadas pela politica de retry.
	ProviderRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pedidomestre",
		Subsystem: "provider",
		Name:      "retries_total",
		Help:      "Total de novas tentativas em chamadas externas",
	}, []string{"falha"})

	BairrosCriados = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pedidomestre",
		Subsystem: "bairros",
		Name:      "criados_total",
		Help:      "Total de bairros criados automaticamente",
	})

	TaxasCalculadas = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pedidomestre",
		Subsystem: "taxa_entrega",
		Name:      "calculos_total",
		Help:      "Total de calculos de taxa de entrega por resultado",
	}, []string{"resultado"})
)
