package cnpj

import (
	"context"
	"errors"
	"log/slog"

	"pedidomestre/pkg/metrics"
)

// Gateway tenta os provedores de cadastro em ordem fixa e devolve o
// primeiro resultado. Se todos falharem, devolve ErrCnpjNaoEncontrado.
type Gateway struct {
	providers []Provider
	logger    *slog.Logger
}

func NewGateway(logger *slog.Logger, providers ...Provider) *Gateway {
	return &Gateway{providers: providers, logger: logger}
}

func (g *Gateway) Consultar(ctx context.Context, cnpj string) (Info, error) {
	for _, provider := range g.providers {
		info, err := provider.Consultar(ctx, cnpj)
		if err != nil {
			resultado := "erro"
			if errors.Is(err, ErrCnpjNaoEncontrado) {
				resultado = "vazio"
			}
			metrics.ProviderRequests.WithLabelValues(provider.Nome(), resultado).Inc()
			g.logger.Warn("provedor de CNPJ falhou",
				"provedor", provider.Nome(),
				"cnpj", cnpj,
				"erro", err,
			)
			continue
		}
		metrics.ProviderRequests.WithLabelValues(provider.Nome(), "sucesso").Inc()
		return info, nil
	}

	return Info{}, ErrCnpjNaoEncontrado
}
