package taxa_entrega

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"pedidomestre/internal/loja"
	"pedidomestre/pkg/geodist"
	"pedidomestre/pkg/metrics"
)

var (
	ErrEnderecoNaoEncontrado = errors.New("endereço não encontrado ou sem bairro")
	ErrSemCobertura          = errors.New("nenhuma loja atende o bairro informado")
	ErrNenhumaLojaAberta     = errors.New("nenhuma loja disponível no momento")
	ErrLojaPreferidaFechada  = errors.New("a loja preferida está fechada")
	ErrForaDoRaio            = errors.New("nenhuma loja atende dentro do raio de entrega")
)

type InterfaceService interface {
	CalcularTaxaEntrega(ctx context.Context, idEndereco int64, lojaPreferida *int64) (ResultadoTaxaEntrega, error)
	ObterLojasDisponiveis(ctx context.Context, idEndereco int64) ([]LojaDisponivel, error)
}

type Service struct {
	InterfaceService   InterfaceRepository
	TaxaPorKmAdicional float64
	Logger             *slog.Logger
}

func NewTaxaEntregaService(repository InterfaceRepository, taxaPorKmAdicional float64, logger *slog.Logger) *Service {
	return &Service{InterfaceService: repository, TaxaPorKmAdicional: taxaPorKmAdicional, Logger: logger}
}

type candidata struct {
	CoberturaRow
	DistanciaKm float64
}

// CalcularTaxaEntrega escolhe a loja que entrega no bairro do endereco e
// devolve a taxa declarada para o bairro. A loja preferida so vence se passar
// pelos mesmos filtros de status e raio; quando ela vence sem ser a mais
// proxima, a taxa recebe um adicional por quilometro extra.
func (s *Service) CalcularTaxaEntrega(ctx context.Context, idEndereco int64, lojaPreferida *int64) (ResultadoTaxaEntrega, error) {
	endereco, err := s.InterfaceService.FindEnderecoByID(ctx, idEndereco)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.TaxasCalculadas.WithLabelValues("endereco_nao_encontrado").Inc()
		return ResultadoTaxaEntrega{}, ErrEnderecoNaoEncontrado
	}
	if err != nil {
		return ResultadoTaxaEntrega{}, err
	}
	if !endereco.Bairro.Valid || endereco.Bairro.String == "" {
		metrics.TaxasCalculadas.WithLabelValues("endereco_nao_encontrado").Inc()
		return ResultadoTaxaEntrega{}, ErrEnderecoNaoEncontrado
	}

	cobertura, err := s.InterfaceService.FindCoberturaPorBairro(ctx, endereco.Bairro.String)
	if err != nil {
		return ResultadoTaxaEntrega{}, err
	}
	if len(cobertura) == 0 {
		metrics.TaxasCalculadas.WithLabelValues("sem_cobertura").Inc()
		return ResultadoTaxaEntrega{}, ErrSemCobertura
	}

	var abertas []CoberturaRow
	for _, c := range cobertura {
		if c.Status == loja.StatusAberta {
			abertas = append(abertas, c)
		}
	}
	if len(abertas) == 0 {
		if lojaPreferida != nil && contemLoja(cobertura, *lojaPreferida) {
			metrics.TaxasCalculadas.WithLabelValues("loja_preferida_fechada").Inc()
			return ResultadoTaxaEntrega{}, ErrLojaPreferidaFechada
		}
		metrics.TaxasCalculadas.WithLabelValues("nenhuma_aberta").Inc()
		return ResultadoTaxaEntrega{}, ErrNenhumaLojaAberta
	}

	candidatas := make([]candidata, 0, len(abertas))
	for _, c := range abertas {
		distancia := geodist.DistanciaKmNull(endereco.Latitude, endereco.Longitude, c.Latitude, c.Longitude)
		if c.RaioKm.Valid && distancia > c.RaioKm.Float64 {
			continue
		}
		candidatas = append(candidatas, candidata{CoberturaRow: c, DistanciaKm: distancia})
	}
	if len(candidatas) == 0 {
		metrics.TaxasCalculadas.WithLabelValues("fora_do_raio").Inc()
		return ResultadoTaxaEntrega{}, ErrForaDoRaio
	}

	sort.Slice(candidatas, func(i, j int) bool {
		return candidatas[i].DistanciaKm < candidatas[j].DistanciaKm
	})
	maisProxima := candidatas[0]

	escolhida := maisProxima
	if lojaPreferida != nil {
		for _, c := range candidatas {
			if c.IdLoja == *lojaPreferida {
				escolhida = c
				break
			}
		}
	}

	resultado := ResultadoTaxaEntrega{
		IdLoja:          escolhida.IdLoja,
		NomeLoja:        escolhida.NomeLoja,
		TaxaEntrega:     escolhida.TaxaEntrega,
		DistanciaKm:     escolhida.DistanciaKm,
		LojaMaisProxima: escolhida.IdLoja == maisProxima.IdLoja,
	}
	if !resultado.LojaMaisProxima {
		kmExtras := escolhida.DistanciaKm - maisProxima.DistanciaKm
		adicional := kmExtras * s.TaxaPorKmAdicional
		resultado.TaxaEntrega += adicional
		resultado.Observacao = fmt.Sprintf(
			"A loja preferida fica %.2f km além da mais próxima; adicional de R$ %.2f aplicado à taxa.",
			kmExtras, adicional)
		s.Logger.Info("taxa com adicional de distância",
			"id_endereco", idEndereco, "loja_escolhida", escolhida.IdLoja,
			"loja_mais_proxima", maisProxima.IdLoja, "adicional", adicional)
	}

	metrics.TaxasCalculadas.WithLabelValues("sucesso").Inc()
	return resultado, nil
}

// ObterLojasDisponiveis lista todas as lojas que atendem o bairro do
// endereco, inclusive as fechadas e as fora do raio, com o status de cada
// uma. A ordenacao e da mais proxima para a mais distante; em empate de
// distancia a loja aberta vem primeiro.
func (s *Service) ObterLojasDisponiveis(ctx context.Context, idEndereco int64) ([]LojaDisponivel, error) {
	endereco, err := s.InterfaceService.FindEnderecoByID(ctx, idEndereco)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEnderecoNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if !endereco.Bairro.Valid || endereco.Bairro.String == "" {
		return nil, ErrEnderecoNaoEncontrado
	}

	cobertura, err := s.InterfaceService.FindCoberturaPorBairro(ctx, endereco.Bairro.String)
	if err != nil {
		return nil, err
	}
	if len(cobertura) == 0 {
		return nil, ErrSemCobertura
	}

	disponiveis := make([]LojaDisponivel, 0, len(cobertura))
	for _, c := range cobertura {
		distancia := geodist.DistanciaKmNull(endereco.Latitude, endereco.Longitude, c.Latitude, c.Longitude)
		disponiveis = append(disponiveis, LojaDisponivel{
			IdLoja:      c.IdLoja,
			NomeLoja:    c.NomeLoja,
			Status:      c.Status,
			TaxaEntrega: c.TaxaEntrega,
			DistanciaKm: distancia,
		})
	}
	sort.Slice(disponiveis, func(i, j int) bool {
		if disponiveis[i].DistanciaKm != disponiveis[j].DistanciaKm {
			return disponiveis[i].DistanciaKm < disponiveis[j].DistanciaKm
		}
		return disponiveis[i].Status == loja.StatusAberta && disponiveis[j].Status != loja.StatusAberta
	})
	return disponiveis, nil
}

func contemLoja(cobertura []CoberturaRow, idLoja int64) bool {
	for _, c := range cobertura {
		if c.IdLoja == idLoja {
			return true
		}
	}
	return false
}
