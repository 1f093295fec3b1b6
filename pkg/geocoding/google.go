package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// GoogleClient e o provedor de fallback via Google Maps Geocoding,
// habilitado apenas quando ha chave configurada.
type GoogleClient struct {
	client *maps.Client
	logger *slog.Logger
}

func NewGoogleClient(apiKey string, logger *slog.Logger) (*GoogleClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente google maps: %w", err)
	}
	return &GoogleClient{client: client, logger: logger}, nil
}

func (g *GoogleClient) Nome() string { return "googlemaps" }

func (g *GoogleClient) BuscarCoordenadas(ctx context.Context, endereco string) (Resultado, error) {
	g.logger.Info("buscando coordenadas", "provedor", g.Nome(), "endereco", endereco)

	resultados, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  endereco,
		Region:   "br",
		Language: "pt-BR",
	})
	if err != nil {
		return Resultado{}, fmt.Errorf("erro na requisição google maps: %w", err)
	}

	if len(resultados) == 0 {
		return Resultado{}, nil
	}

	primeiro := resultados[0]
	resultado := Resultado{
		Latitude:          primeiro.Geometry.Location.Lat,
		Longitude:         primeiro.Geometry.Location.Lng,
		EnderecoFormatado: primeiro.FormattedAddress,
		Encontrado:        true,
	}

	for _, componente := range primeiro.AddressComponents {
		for _, tipo := range componente.Types {
			switch tipo {
			case "locality", "administrative_area_level_2":
				if resultado.Cidade == "" {
					resultado.Cidade = componente.LongName
				}
			case "administrative_area_level_1":
				resultado.Uf = ExtrairUf(componente.ShortName)
			}
		}
	}

	return resultado, nil
}
