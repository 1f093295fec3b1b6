package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pedidomestre/pkg/httpclient"
	"pedidomestre/pkg/metrics"
)

// ErrCepNaoEncontrado indica CEP desconhecido pelo provedor (recuperavel).
var ErrCepNaoEncontrado = errors.New("CEP não encontrado")

// Endereco e a resposta normalizada da consulta de CEP.
type Endereco struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	Uf          string `json:"uf"`
}

// Client consulta o provedor de CEP (ViaCEP).
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

type respostaViaCep struct {
	Cep         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	Uf          string          `json:"uf"`
	Erro        json.RawMessage `json:"erro"`
}

// BuscarEndereco resolve um CEP em endereco. A presenca do campo "erro"
// na resposta significa nao encontrado.
func (c *Client) BuscarEndereco(ctx context.Context, cep string) (Endereco, error) {
	normalizado := Normalizar(cep)
	if len(normalizado) != 8 {
		return Endereco{}, ErrCepNaoEncontrado
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, normalizado)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Endereco{}, fmt.Errorf("erro ao criar requisição viacep: %w", err)
	}

	c.logger.Info("buscando endereço pelo CEP", "cep", normalizado)

	resp, err := c.retry.Execute(ctx, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("viacep", "erro").Inc()
		return Endereco{}, fmt.Errorf("erro na requisição viacep: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues("viacep", "erro").Inc()
		return Endereco{}, fmt.Errorf("viacep retornou status %d", resp.StatusCode)
	}

	var corpo respostaViaCep
	if err := json.NewDecoder(resp.Body).Decode(&corpo); err != nil {
		return Endereco{}, fmt.Errorf("erro ao decodificar resposta viacep: %w", err)
	}

	if len(corpo.Erro) > 0 {
		metrics.ProviderRequests.WithLabelValues("viacep", "vazio").Inc()
		return Endereco{}, ErrCepNaoEncontrado
	}

	metrics.ProviderRequests.WithLabelValues("viacep", "sucesso").Inc()
	return Endereco{
		Cep:         normalizado,
		Logradouro:  corpo.Logradouro,
		Complemento: corpo.Complemento,
		Bairro:      corpo.Bairro,
		Localidade:  corpo.Localidade,
		Uf:          corpo.Uf,
	}, nil
}

// Normalizar remove separadores do CEP.
func Normalizar(cep string) string {
	cep = strings.ReplaceAll(cep, "-", "")
	cep = strings.ReplaceAll(cep, ".", "")
	return strings.TrimSpace(cep)
}
