package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"pedidomestre/pkg/httpclient"
)

// userAgent identifica o cliente, exigido pelo Nominatim.
const userAgent = "PedidoMestre/1.0"

// NominatimClient e o provedor primario de geocodificacao direta.
// O provedor exige no maximo 1 requisicao por segundo, entao o cliente
// pausa apos toda chamada, independente do resultado.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
	retry      *httpclient.RetryPolicy
	clock      clockwork.Clock
	pausa      time.Duration
	logger     *slog.Logger
}

func NewNominatimClient(baseURL string, pausa time.Duration, retry *httpclient.RetryPolicy, logger *slog.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		retry:      retry,
		clock:      clockwork.NewRealClock(),
		pausa:      pausa,
		logger:     logger,
	}
}

func (c *NominatimClient) Nome() string { return "nominatim" }

type resultadoNominatim struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Municipality string `json:"municipality"`
		Village      string `json:"village"`
		State        string `json:"state"`
		StateCode    string `json:"state_code"`
	} `json:"address"`
}

func (c *NominatimClient) BuscarCoordenadas(ctx context.Context, endereco string) (Resultado, error) {
	defer c.aguardarPausa(ctx)

	params := url.Values{}
	params.Set("q", endereco)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Resultado{}, fmt.Errorf("erro ao criar requisição nominatim: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Info("buscando coordenadas", "provedor", c.Nome(), "endereco", endereco)

	resp, err := c.retry.Execute(ctx, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return Resultado{}, fmt.Errorf("erro na requisição nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Resultado{}, fmt.Errorf("nominatim retornou status %d", resp.StatusCode)
	}

	var resultados []resultadoNominatim
	if err := json.NewDecoder(resp.Body).Decode(&resultados); err != nil {
		return Resultado{}, fmt.Errorf("erro ao decodificar resposta nominatim: %w", err)
	}

	if len(resultados) == 0 {
		return Resultado{}, nil
	}

	primeiro := resultados[0]
	lat, errLat := strconv.ParseFloat(primeiro.Lat, 64)
	lon, errLon := strconv.ParseFloat(primeiro.Lon, 64)
	if errLat != nil || errLon != nil {
		return Resultado{}, fmt.Errorf("nominatim retornou coordenadas inválidas: %q,%q", primeiro.Lat, primeiro.Lon)
	}

	resultado := Resultado{
		Latitude:          lat,
		Longitude:         lon,
		Cidade:            primeiraCidade(primeiro),
		EnderecoFormatado: primeiro.DisplayName,
		Encontrado:        true,
	}

	if primeiro.Address.State != "" {
		resultado.Uf = ExtrairUf(primeiro.Address.State)
	} else if primeiro.Address.StateCode != "" {
		resultado.Uf = ExtrairUf(primeiro.Address.StateCode)
	}

	return resultado, nil
}

func primeiraCidade(r resultadoNominatim) string {
	for _, nome := range []string{r.Address.City, r.Address.Town, r.Address.Municipality, r.Address.Village} {
		if nome != "" {
			return nome
		}
	}
	return ""
}

func (c *NominatimClient) aguardarPausa(ctx context.Context) {
	if c.pausa <= 0 {
		return
	}
	select {
	case <-c.clock.After(c.pausa):
	case <-ctx.Done():
	}
}
