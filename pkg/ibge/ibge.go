package ibge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"pedidomestre/pkg/httpclient"
	"pedidomestre/pkg/metrics"
)

// ErrMunicipioNaoEncontrado indica cidade desconhecida no estado informado.
var ErrMunicipioNaoEncontrado = errors.New("município não encontrado")

// Distrito e uma subdivisao administrativa de um municipio.
type Distrito struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Client consulta a API de localidades do IBGE.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      *httpclient.RetryPolicy
	logger     *slog.Logger
}

func NewClient(baseURL string, retry *httpclient.RetryPolicy, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		retry:      retry,
		logger:     logger,
	}
}

// BuscarCodigoMunicipio resolve cidade/UF no codigo IBGE do municipio.
// A comparacao de nomes ignora acentos e caixa.
func (c *Client) BuscarCodigoMunicipio(ctx context.Context, cidade, uf string) (int64, error) {
	url := fmt.Sprintf("%s/estados/%s/municipios", c.baseURL, strings.ToUpper(uf))

	var municipios []Distrito
	if err := c.buscarLista(ctx, url, &municipios); err != nil {
		return 0, err
	}

	alvo := normalizarNome(cidade)
	for _, municipio := range municipios {
		if normalizarNome(municipio.Nome) == alvo {
			return municipio.ID, nil
		}
	}

	return 0, ErrMunicipioNaoEncontrado
}

// BuscarDistritos lista os distritos do municipio, com nomes unicos.
// Lista vazia nao e erro: o provedor nao garante cobertura completa.
func (c *Client) BuscarDistritos(ctx context.Context, codigoMunicipio int64) ([]Distrito, error) {
	url := fmt.Sprintf("%s/municipios/%d/distritos", c.baseURL, codigoMunicipio)

	var distritos []Distrito
	if err := c.buscarLista(ctx, url, &distritos); err != nil {
		return nil, err
	}

	vistos := make(map[string]bool)
	unicos := make([]Distrito, 0, len(distritos))
	for _, distrito := range distritos {
		chave := normalizarNome(distrito.Nome)
		if chave == "" || vistos[chave] {
			continue
		}
		vistos[chave] = true
		unicos = append(unicos, distrito)
	}

	return unicos, nil
}

func (c *Client) buscarLista(ctx context.Context, url string, destino any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição ibge: %w", err)
	}

	resp, err := c.retry.Execute(ctx, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("ibge", "erro").Inc()
		return fmt.Errorf("erro na requisição ibge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("ibge", "erro").Inc()
		return fmt.Errorf("ibge retornou status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(destino); err != nil {
		return fmt.Errorf("erro ao decodificar resposta ibge: %w", err)
	}

	metrics.ProviderRequests.WithLabelValues("ibge", "sucesso").Inc()
	return nil
}

func normalizarNome(nome string) string {
	normalizado := norm.NFD.String(strings.TrimSpace(nome))
	var resultado strings.Builder
	for _, r := range normalizado {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		resultado.WriteRune(r)
	}
	return strings.ToLower(resultado.String())
}
