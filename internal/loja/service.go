package loja

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"pedidomestre/pkg/geocoding"
	"pedidomestre/validation"
)

var (
	ErrLojaNaoEncontrada = errors.New("loja não encontrada")
	ErrCnpjInvalido      = errors.New("CNPJ inválido")
)

type Geocoder interface {
	BuscarCoordenadas(ctx context.Context, endereco string) (geocoding.Resultado, error)
}

type InterfaceService interface {
	CreateLoja(ctx context.Context, data CreateLojaRequest) (LojaResponse, error)
	GetLojaByID(ctx context.Context, idLoja int64) (LojaResponse, error)
	GetAllLojas(ctx context.Context) ([]LojaResponse, error)
	UpdateStatus(ctx context.Context, idLoja int64, status string) (LojaResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	Geocoder         Geocoder
	Logger           *slog.Logger
}

func NewLojasService(repository InterfaceRepository, geocoder Geocoder, logger *slog.Logger) *Service {
	return &Service{InterfaceService: repository, Geocoder: geocoder, Logger: logger}
}

// CreateLoja cadastra a loja e tenta resolver as coordenadas do endereco na
// hora. A geocodificacao e melhor esforco: se todos os provedores falharem a
// loja fica sem coordenadas e o bootstrap de bairros resolve depois.
func (s *Service) CreateLoja(ctx context.Context, data CreateLojaRequest) (LojaResponse, error) {
	params := CreateLojaParams{
		Nome:     data.Nome,
		Endereco: data.Endereco,
		Status:   string(ParseStatus(data.Status)),
	}
	if data.Cnpj != "" {
		if !validation.ValidateCNPJ(data.Cnpj) {
			return LojaResponse{}, ErrCnpjInvalido
		}
		params.Cnpj = sql.NullString{String: data.Cnpj, Valid: true}
	}
	if data.Telefone != "" {
		params.Telefone = sql.NullString{String: data.Telefone, Valid: true}
	}
	if data.TaxaPorKm != nil {
		params.TaxaPorKm = sql.NullFloat64{Float64: *data.TaxaPorKm, Valid: true}
	}
	if data.RaioKm != nil {
		params.RaioKm = sql.NullFloat64{Float64: *data.RaioKm, Valid: true}
	}

	if data.Latitude != nil && data.Longitude != nil {
		params.Latitude = sql.NullFloat64{Float64: *data.Latitude, Valid: true}
		params.Longitude = sql.NullFloat64{Float64: *data.Longitude, Valid: true}
	} else {
		resultado, err := s.Geocoder.BuscarCoordenadas(ctx, data.Endereco)
		if err != nil || !resultado.Encontrado {
			s.Logger.Warn("loja cadastrada sem coordenadas", "nome", data.Nome, "erro", err)
		} else {
			params.Latitude = sql.NullFloat64{Float64: resultado.Latitude, Valid: true}
			params.Longitude = sql.NullFloat64{Float64: resultado.Longitude, Valid: true}
		}
	}

	criada, err := s.InterfaceService.CreateLoja(ctx, params)
	if err != nil {
		return LojaResponse{}, err
	}
	var resposta LojaResponse
	resposta.ParseFromDb(criada)
	return resposta, nil
}

func (s *Service) GetLojaByID(ctx context.Context, idLoja int64) (LojaResponse, error) {
	loja, err := s.InterfaceService.FindLojaByID(ctx, idLoja)
	if errors.Is(err, sql.ErrNoRows) {
		return LojaResponse{}, ErrLojaNaoEncontrada
	}
	if err != nil {
		return LojaResponse{}, err
	}
	var resposta LojaResponse
	resposta.ParseFromDb(loja)
	return resposta, nil
}

func (s *Service) GetAllLojas(ctx context.Context) ([]LojaResponse, error) {
	lojas, err := s.InterfaceService.FindAllLojas(ctx)
	if err != nil {
		return nil, err
	}
	respostas := make([]LojaResponse, 0, len(lojas))
	for _, l := range lojas {
		var resposta LojaResponse
		resposta.ParseFromDb(l)
		respostas = append(respostas, resposta)
	}
	return respostas, nil
}

func (s *Service) UpdateStatus(ctx context.Context, idLoja int64, status string) (LojaResponse, error) {
	atualizada, err := s.InterfaceService.UpdateStatus(ctx, idLoja, string(ParseStatus(status)))
	if errors.Is(err, sql.ErrNoRows) {
		return LojaResponse{}, ErrLojaNaoEncontrada
	}
	if err != nil {
		return LojaResponse{}, err
	}
	var resposta LojaResponse
	resposta.ParseFromDb(atualizada)
	return resposta, nil
}
