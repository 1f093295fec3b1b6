package geocoding

import (
	"context"
	"log/slog"

	"pedidomestre/pkg/metrics"
)

// Gateway tenta os provedores em ordem fixa de prioridade e devolve o
// primeiro resultado normalizado nao vazio. Falha de todos vira
// ErrNaoEncontrado, que o chamador trata como recuperavel.
type Gateway struct {
	providers []Provider
	logger    *slog.Logger
}

func NewGateway(logger *slog.Logger, providers ...Provider) *Gateway {
	return &Gateway{providers: providers, logger: logger}
}

func (g *Gateway) BuscarCoordenadas(ctx context.Context, endereco string) (Resultado, error) {
	for _, provider := range g.providers {
		resultado, err := provider.BuscarCoordenadas(ctx, endereco)
		if err != nil {
			metrics.ProviderRequests.WithLabelValues(provider.Nome(), "erro").Inc()
			g.logger.Warn("provedor de geocodificação falhou",
				"provedor", provider.Nome(),
				"endereco", endereco,
				"erro", err,
			)
			continue
		}
		if !resultado.Encontrado {
			metrics.ProviderRequests.WithLabelValues(provider.Nome(), "vazio").Inc()
			continue
		}
		metrics.ProviderRequests.WithLabelValues(provider.Nome(), "sucesso").Inc()
		return resultado, nil
	}

	return Resultado{}, ErrNaoEncontrado
}
