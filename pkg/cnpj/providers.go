package cnpj

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pedidomestre/pkg/httpclient"
)

// BrasilApiClient consulta a BrasilAPI, o provedor primario.
type BrasilApiClient struct {
	baseURL    string
	httpClient *http.Client
	retry      *httpclient.RetryPolicy
	logger     *slog.Logger
}

func NewBrasilApiClient(baseURL string, retry *httpclient.RetryPolicy, logger *slog.Logger) *BrasilApiClient {
	return &BrasilApiClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		retry:      retry,
		logger:     logger,
	}
}

func (c *BrasilApiClient) Nome() string { return "brasilapi" }

func (c *BrasilApiClient) Consultar(ctx context.Context, cnpj string) (Info, error) {
	var corpo struct {
		RazaoSocial  string `json:"razao_social"`
		NomeFantasia string `json:"nome_fantasia"`
		Situacao     string `json:"descricao_situacao_cadastral"`
		Logradouro   string `json:"logradouro"`
		Numero       string `json:"numero"`
		Complemento  string `json:"complemento"`
		Bairro       string `json:"bairro"`
		Municipio    string `json:"municipio"`
		Uf           string `json:"uf"`
		Cep          string `json:"cep"`
	}

	url := fmt.Sprintf("%s/api/cnpj/v1/%s", c.baseURL, cnpj)
	if err := consultarJSON(ctx, c.httpClient, c.retry, c.logger, c.Nome(), url, &corpo); err != nil {
		return Info{}, err
	}

	return Info{
		Cnpj:         cnpj,
		RazaoSocial:  corpo.RazaoSocial,
		NomeFantasia: corpo.NomeFantasia,
		Situacao:     situacaoOuDesconhecida(corpo.Situacao),
		Logradouro:   corpo.Logradouro,
		Numero:       corpo.Numero,
		Complemento:  corpo.Complemento,
		Bairro:       corpo.Bairro,
		Cidade:       corpo.Municipio,
		Uf:           corpo.Uf,
		Cep:          corpo.Cep,
		Valido:       strings.Contains(strings.ToLower(corpo.Situacao), "ativa"),
	}, nil
}

// OpenCnpjClient consulta a OpenCNPJ, primeiro fallback.
type OpenCnpjClient struct {
	baseURL    string
	httpClient *http.Client
	retry      *httpclient.RetryPolicy
	logger     *slog.Logger
}

func NewOpenCnpjClient(baseURL string, retry *httpclient.RetryPolicy, logger *slog.Logger) *OpenCnpjClient {
	return &OpenCnpjClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		retry:      retry,
		logger:     logger,
	}
}

func (c *OpenCnpjClient) Nome() string { return "opencnpj" }

func (c *OpenCnpjClient) Consultar(ctx context.Context, cnpj string) (Info, error) {
	var corpo struct {
		RazaoSocial  string `json:"razao_social"`
		NomeFantasia string `json:"nome_fantasia"`
		Situacao     string `json:"situacao_cadastral"`
		Logradouro   string `json:"logradouro"`
		Numero       string `json:"numero"`
		Complemento  string `json:"complemento"`
		Bairro       string `json:"bairro"`
		Municipio    string `json:"municipio"`
		Uf           string `json:"uf"`
		Cep          string `json:"cep"`
	}

	url := fmt.Sprintf("%s/api/v1/cnpj/%s", c.baseURL, cnpj)
	if err := consultarJSON(ctx, c.httpClient, c.retry, c.logger, c.Nome(), url, &corpo); err != nil {
		return Info{}, err
	}

	situacao := strings.ToLower(corpo.Situacao)
	return Info{
		Cnpj:         cnpj,
		RazaoSocial:  corpo.RazaoSocial,
		NomeFantasia: corpo.NomeFantasia,
		Situacao:     situacaoOuDesconhecida(corpo.Situacao),
		Logradouro:   corpo.Logradouro,
		Numero:       corpo.Numero,
		Complemento:  corpo.Complemento,
		Bairro:       corpo.Bairro,
		Cidade:       corpo.Municipio,
		Uf:           corpo.Uf,
		Cep:          corpo.Cep,
		Valido:       situacao == "ativa" || situacao == "2",
	}, nil
}

// CnpjaClient consulta a CNPJá, ultimo fallback.
type CnpjaClient struct {
	baseURL    string
	httpClient *http.Client
	retry      *httpclient.RetryPolicy
	logger     *slog.Logger
}

func NewCnpjaClient(baseURL string, retry *httpclient.RetryPolicy, logger *slog.Logger) *CnpjaClient {
	return &CnpjaClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		retry:      retry,
		logger:     logger,
	}
}

func (c *CnpjaClient) Nome() string { return "cnpja" }

func (c *CnpjaClient) Consultar(ctx context.Context, cnpj string) (Info, error) {
	var corpo struct {
		RazaoSocial  string `json:"razao_social"`
		NomeFantasia string `json:"nome_fantasia"`
		Situacao     string `json:"situacao"`
		Logradouro   string `json:"logradouro"`
		Numero       string `json:"numero"`
		Complemento  string `json:"complemento"`
		Bairro       string `json:"bairro"`
		Municipio    string `json:"municipio"`
		Uf           string `json:"uf"`
		Cep          string `json:"cep"`
	}

	url := fmt.Sprintf("%s/api/open/%s", c.baseURL, cnpj)
	if err := consultarJSON(ctx, c.httpClient, c.retry, c.logger, c.Nome(), url, &corpo); err != nil {
		return Info{}, err
	}

	return Info{
		Cnpj:         cnpj,
		RazaoSocial:  corpo.RazaoSocial,
		NomeFantasia: corpo.NomeFantasia,
		Situacao:     situacaoOuDesconhecida(corpo.Situacao),
		Logradouro:   corpo.Logradouro,
		Numero:       corpo.Numero,
		Complemento:  corpo.Complemento,
		Bairro:       corpo.Bairro,
		Cidade:       corpo.Municipio,
		Uf:           corpo.Uf,
		Cep:          corpo.Cep,
		Valido:       strings.EqualFold(corpo.Situacao, "ativa"),
	}, nil
}

func consultarJSON(ctx context.Context, client *http.Client, retry *httpclient.RetryPolicy, logger *slog.Logger, provedor, url string, destino any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição %s: %w", provedor, err)
	}

	logger.Info("consultando CNPJ", "provedor", provedor)

	resp, err := retry.Execute(ctx, func() (*http.Response, error) {
		return client.Do(req)
	})
	if err != nil {
		return fmt.Errorf("erro na requisição %s: %w", provedor, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrCnpjNaoEncontrado
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s retornou status %d", provedor, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(destino); err != nil {
		return fmt.Errorf("erro ao decodificar resposta %s: %w", provedor, err)
	}

	return nil
}

func situacaoOuDesconhecida(situacao string) string {
	if situacao == "" {
		return "Desconhecida"
	}
	return situacao
}
