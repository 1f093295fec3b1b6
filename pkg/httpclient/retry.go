package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"pedidomestre/pkg/metrics"
)

// DefaultMaxRetries e o orcamento padrao de novas tentativas.
const DefaultMaxRetries = 3

// retryableStatus sao os status tratados como falha transitoria.
var retryableStatus = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// RetryPolicy repete chamadas HTTP com backoff exponencial. Nao guarda
// estado entre chamadas e pode ser compartilhada entre clientes.
type RetryPolicy struct {
	MaxRetries int
	Clock      clockwork.Clock
	Logger     *slog.Logger
}

func NewRetryPolicy(maxRetries int, logger *slog.Logger) *RetryPolicy {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryPolicy{
		MaxRetries: maxRetries,
		Clock:      clockwork.NewRealClock(),
		Logger:     logger,
	}
}

// Execute executa op e repete em falha transitoria (erro de conexao ou
// status 408/500/502/503/504). A espera antes da tentativa k e de 2^k
// segundos. Esgotado o orcamento, o ultimo resultado e devolvido sem
// alteracao; respostas nao transitorias (demais 4xx/2xx) voltam direto
// ao chamador, que as interpreta.
func (p *RetryPolicy) Execute(ctx context.Context, op func() (*http.Response, error)) (*http.Response, error) {
	resp, err := op()

	for tentativa := 1; tentativa <= p.MaxRetries; tentativa++ {
		if !retryable(resp, err) {
			return resp, err
		}

		falha := failureSignature(resp, err)
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		espera := time.Duration(1<<uint(tentativa)) * time.Second
		p.Logger.Warn("nova tentativa de chamada externa",
			"tentativa", tentativa,
			"restantes", p.MaxRetries-tentativa,
			"espera", espera.String(),
			"falha", falha,
		)
		metrics.ProviderRetries.WithLabelValues(falha).Inc()

		select {
		case <-p.Clock.After(espera):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = op()
	}

	return resp, err
}

func retryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp != nil && retryableStatus[resp.StatusCode]
}

func failureSignature(resp *http.Response, err error) string {
	if err != nil {
		return "erro_de_rede"
	}
	return strconv.Itoa(resp.StatusCode)
}
