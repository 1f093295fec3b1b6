package bairro

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"pedidomestre/pkg/geocoding"
	"pedidomestre/pkg/geodist"
	"pedidomestre/pkg/ibge"
	"pedidomestre/pkg/metrics"
)

var (
	ErrLojaNaoEncontrada   = errors.New("loja não encontrada")
	ErrBairroNaoEncontrado = errors.New("bairro não encontrado")
	// ErrCoordenadasLoja indica que nenhum provedor resolveu o endereco da
	// loja. Sem a origem nao ha como calcular distancias, entao o bootstrap
	// inteiro e abortado antes de criar qualquer bairro.
	ErrCoordenadasLoja = errors.New("não foi possível obter as coordenadas da loja")
)

type Geocoder interface {
	BuscarCoordenadas(ctx context.Context, endereco string) (geocoding.Resultado, error)
}

type Localidades interface {
	BuscarCodigoMunicipio(ctx context.Context, cidade, uf string) (int64, error)
	BuscarDistritos(ctx context.Context, codigoMunicipio int64) ([]ibge.Distrito, error)
}

type InterfaceService interface {
	CriarBairrosAutomaticamente(ctx context.Context, idLoja int64, data CriarAutomaticoRequest) ([]BairroResponse, error)
	BuscarBairrosPorCidade(ctx context.Context, cidade, uf string) ([]BairroCandidato, error)
	AtualizarTaxa(ctx context.Context, idBairro int64, novaTaxa float64) (BairroResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	Geocoder         Geocoder
	Localidades      Localidades
	TaxaBase         float64
	TaxaPorKmPadrao  float64
	TaxaMaxima       float64
	Logger           *slog.Logger
}

func NewBairrosService(repository InterfaceRepository, geocoder Geocoder, localidades Localidades, taxaBase, taxaPorKmPadrao, taxaMaxima float64, logger *slog.Logger) *Service {
	return &Service{
		InterfaceService: repository,
		Geocoder:         geocoder,
		Localidades:      localidades,
		TaxaBase:         taxaBase,
		TaxaPorKmPadrao:  taxaPorKmPadrao,
		TaxaMaxima:       taxaMaxima,
		Logger:           logger,
	}
}

// CriarBairrosAutomaticamente enumera os bairros da cidade, calcula a taxa de
// entrega de cada um pela distancia ate a loja e persiste tudo em lote.
// Bairros que a loja ja atende sao pulados, o que torna a operacao idempotente.
func (s *Service) CriarBairrosAutomaticamente(ctx context.Context, idLoja int64, data CriarAutomaticoRequest) ([]BairroResponse, error) {
	loja, err := s.InterfaceService.FindLojaByID(ctx, idLoja)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLojaNaoEncontrada
	}
	if err != nil {
		return nil, err
	}

	latitude, longitude := loja.Latitude, loja.Longitude
	if data.Latitude != nil && data.Longitude != nil {
		latitude = sql.NullFloat64{Float64: *data.Latitude, Valid: true}
		longitude = sql.NullFloat64{Float64: *data.Longitude, Valid: true}
	}

	if !latitude.Valid || !longitude.Valid {
		resultado, err := s.Geocoder.BuscarCoordenadas(ctx, fmt.Sprintf("%s, %s, %s, Brasil", loja.Endereco, data.Cidade, data.Uf))
		if err != nil || !resultado.Encontrado {
			s.Logger.Error("endereço da loja não geocodificado; bootstrap abortado",
				"id_loja", idLoja, "endereco", loja.Endereco, "erro", err)
			return nil, ErrCoordenadasLoja
		}
		latitude = sql.NullFloat64{Float64: resultado.Latitude, Valid: true}
		longitude = sql.NullFloat64{Float64: resultado.Longitude, Valid: true}
		if err := s.InterfaceService.UpdateLojaCoordenadas(ctx, idLoja, resultado.Latitude, resultado.Longitude); err != nil {
			return nil, err
		}
	}

	candidatos, err := s.BuscarBairrosPorCidade(ctx, data.Cidade, data.Uf)
	if err != nil {
		return nil, err
	}

	taxaPorKm := s.TaxaPorKmPadrao
	if loja.TaxaPorKm.Valid {
		taxaPorKm = loja.TaxaPorKm.Float64
	}
	if data.TaxaPorKm != nil {
		taxaPorKm = *data.TaxaPorKm
	}

	params := make([]CreateBairroParams, 0, len(candidatos))
	for _, candidato := range candidatos {
		existe, err := s.InterfaceService.ExistsBairro(ctx, idLoja, candidato.Nome)
		if err != nil {
			return nil, err
		}
		if existe {
			continue
		}

		p := CreateBairroParams{IdLoja: idLoja, Nome: candidato.Nome, TaxaEntrega: s.TaxaBase}
		if candidato.Latitude != nil && candidato.Longitude != nil {
			distancia := geodist.DistanciaKm(latitude.Float64, longitude.Float64, *candidato.Latitude, *candidato.Longitude)
			taxa := s.TaxaBase + distancia*taxaPorKm
			if taxa > s.TaxaMaxima {
				taxa = s.TaxaMaxima
			}
			p.TaxaEntrega = taxa
			p.Latitude = sql.NullFloat64{Float64: *candidato.Latitude, Valid: true}
			p.Longitude = sql.NullFloat64{Float64: *candidato.Longitude, Valid: true}
		}
		params = append(params, p)
	}

	criados, err := s.InterfaceService.CreateBairrosEmLote(ctx, params)
	if err != nil {
		return nil, err
	}
	metrics.BairrosCriados.Add(float64(len(criados)))
	s.Logger.Info("bairros criados automaticamente",
		"id_loja", idLoja, "cidade", data.Cidade, "candidatos", len(candidatos), "criados", len(criados))

	respostas := make([]BairroResponse, 0, len(criados))
	for _, b := range criados {
		var resposta BairroResponse
		resposta.ParseFromDb(b)
		respostas = append(respostas, resposta)
	}
	return respostas, nil
}

// BuscarBairrosPorCidade lista os distritos do municipio no IBGE e tenta
// geocodificar cada nome. Falha de geocodificacao nao derruba a listagem: o
// bairro segue sem coordenadas.
func (s *Service) BuscarBairrosPorCidade(ctx context.Context, cidade, uf string) ([]BairroCandidato, error) {
	codigo, err := s.Localidades.BuscarCodigoMunicipio(ctx, cidade, uf)
	if err != nil {
		return nil, err
	}
	distritos, err := s.Localidades.BuscarDistritos(ctx, codigo)
	if err != nil {
		return nil, err
	}

	candidatos := make([]BairroCandidato, 0, len(distritos))
	for _, distrito := range distritos {
		candidato := BairroCandidato{Nome: distrito.Nome}
		resultado, err := s.Geocoder.BuscarCoordenadas(ctx, fmt.Sprintf("%s, %s, Brasil", distrito.Nome, cidade))
		if err != nil || !resultado.Encontrado {
			s.Logger.Warn("bairro sem coordenadas", "bairro", distrito.Nome, "cidade", cidade, "erro", err)
			candidatos = append(candidatos, candidato)
			continue
		}
		lat, lon := resultado.Latitude, resultado.Longitude
		candidato.Latitude = &lat
		candidato.Longitude = &lon
		candidatos = append(candidatos, candidato)
	}
	return candidatos, nil
}

func (s *Service) AtualizarTaxa(ctx context.Context, idBairro int64, novaTaxa float64) (BairroResponse, error) {
	atualizado, err := s.InterfaceService.UpdateTaxa(ctx, idBairro, novaTaxa)
	if errors.Is(err, sql.ErrNoRows) {
		return BairroResponse{}, ErrBairroNaoEncontrado
	}
	if err != nil {
		return BairroResponse{}, err
	}
	var resposta BairroResponse
	resposta.ParseFromDb(atualizado)
	return resposta, nil
}
