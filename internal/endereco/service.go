package endereco

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pedidomestre/pkg/cep"
	"pedidomestre/pkg/geocoding"
)

var ErrEnderecoNaoEncontrado = errors.New("endereço não encontrado")

type Geocoder interface {
	BuscarCoordenadas(ctx context.Context, endereco string) (geocoding.Resultado, error)
}

type ConsultaCep interface {
	BuscarEndereco(ctx context.Context, valor string) (cep.Endereco, error)
}

type InterfaceService interface {
	CreateEndereco(ctx context.Context, data CreateEnderecoRequest) (EnderecoResponse, error)
	GetEnderecoByID(ctx context.Context, idEndereco int64) (EnderecoResponse, error)
	BuscarPorCep(ctx context.Context, valor string) (cep.Endereco, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	Geocoder         Geocoder
	ConsultaCep      ConsultaCep
	Logger           *slog.Logger
}

func NewEnderecosService(repository InterfaceRepository, geocoder Geocoder, consultaCep ConsultaCep, logger *slog.Logger) *Service {
	return &Service{
		InterfaceService: repository,
		Geocoder:         geocoder,
		ConsultaCep:      consultaCep,
		Logger:           logger,
	}
}

// CreateEndereco persiste o endereco do cliente. Quando bairro ou logradouro
// vierem vazios mas o CEP estiver presente, a consulta postal completa os
// campos. A geocodificacao e melhor esforco: o endereco e salvo mesmo sem
// coordenadas e o calculo de distancia trata a ausencia como zero.
func (s *Service) CreateEndereco(ctx context.Context, data CreateEnderecoRequest) (EnderecoResponse, error) {
	if data.Cep != "" && (data.Bairro == "" || data.Logradouro == "") {
		resultado, err := s.ConsultaCep.BuscarEndereco(ctx, data.Cep)
		if err != nil {
			s.Logger.Warn("consulta de CEP falhou ao completar endereço", "cep", data.Cep, "erro", err)
		} else {
			if data.Bairro == "" {
				data.Bairro = resultado.Bairro
			}
			if data.Logradouro == "" {
				data.Logradouro = resultado.Logradouro
			}
		}
	}

	params := CreateEnderecoParams{
		Logradouro: data.Logradouro,
		Cidade:     data.Cidade,
		Uf:         strings.ToUpper(data.Uf),
	}
	if data.Numero != "" {
		params.Numero = sql.NullString{String: data.Numero, Valid: true}
	}
	if data.Complemento != "" {
		params.Complemento = sql.NullString{String: data.Complemento, Valid: true}
	}
	if data.Bairro != "" {
		params.Bairro = sql.NullString{String: data.Bairro, Valid: true}
	}
	if data.Cep != "" {
		params.Cep = sql.NullString{String: cep.Normalizar(data.Cep), Valid: true}
	}

	consulta := fmt.Sprintf("%s, %s, %s, %s, Brasil", data.Logradouro, data.Bairro, data.Cidade, params.Uf)
	resultado, err := s.Geocoder.BuscarCoordenadas(ctx, consulta)
	if err != nil || !resultado.Encontrado {
		s.Logger.Warn("endereço salvo sem coordenadas", "consulta", consulta, "erro", err)
	} else {
		params.Latitude = sql.NullFloat64{Float64: resultado.Latitude, Valid: true}
		params.Longitude = sql.NullFloat64{Float64: resultado.Longitude, Valid: true}
	}

	criado, err := s.InterfaceService.CreateEndereco(ctx, params)
	if err != nil {
		return EnderecoResponse{}, err
	}
	var resposta EnderecoResponse
	resposta.ParseFromDb(criado)
	return resposta, nil
}

func (s *Service) GetEnderecoByID(ctx context.Context, idEndereco int64) (EnderecoResponse, error) {
	resultado, err := s.InterfaceService.FindEnderecoByID(ctx, idEndereco)
	if errors.Is(err, sql.ErrNoRows) {
		return EnderecoResponse{}, ErrEnderecoNaoEncontrado
	}
	if err != nil {
		return EnderecoResponse{}, err
	}
	var resposta EnderecoResponse
	resposta.ParseFromDb(resultado)
	return resposta, nil
}

func (s *Service) BuscarPorCep(ctx context.Context, valor string) (cep.Endereco, error) {
	return s.ConsultaCep.BuscarEndereco(ctx, valor)
}
