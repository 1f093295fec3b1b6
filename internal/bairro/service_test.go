package bairro

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedidomestre/pkg/geocoding"
	"pedidomestre/pkg/ibge"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockRepo struct {
	findLojaFn          func(ctx context.Context, idLoja int64) (LojaRow, error)
	updateCoordenadasFn func(ctx context.Context, idLoja int64, lat, lon float64) error
	existsFn            func(ctx context.Context, idLoja int64, nome string) (bool, error)
	createLoteFn        func(ctx context.Context, params []CreateBairroParams) ([]Bairro, error)
	updateTaxaFn        func(ctx context.Context, idBairro int64, novaTaxa float64) (Bairro, error)
}

func (m *mockRepo) FindLojaByID(ctx context.Context, idLoja int64) (LojaRow, error) {
	return m.findLojaFn(ctx, idLoja)
}

func (m *mockRepo) UpdateLojaCoordenadas(ctx context.Context, idLoja int64, lat, lon float64) error {
	if m.updateCoordenadasFn != nil {
		return m.updateCoordenadasFn(ctx, idLoja, lat, lon)
	}
	return nil
}

func (m *mockRepo) ExistsBairro(ctx context.Context, idLoja int64, nome string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, idLoja, nome)
	}
	return false, nil
}

func (m *mockRepo) CreateBairrosEmLote(ctx context.Context, params []CreateBairroParams) ([]Bairro, error) {
	if m.createLoteFn != nil {
		return m.createLoteFn(ctx, params)
	}
	criados := make([]Bairro, 0, len(params))
	for i, p := range params {
		criados = append(criados, Bairro{
			ID:          int64(i + 1),
			IdLoja:      p.IdLoja,
			Nome:        p.Nome,
			TaxaEntrega: p.TaxaEntrega,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
		})
	}
	return criados, nil
}

func (m *mockRepo) UpdateTaxa(ctx context.Context, idBairro int64, novaTaxa float64) (Bairro, error) {
	return m.updateTaxaFn(ctx, idBairro, novaTaxa)
}

type mockGeocoder struct {
	fn func(ctx context.Context, endereco string) (geocoding.Resultado, error)
}

func (m *mockGeocoder) BuscarCoordenadas(ctx context.Context, endereco string) (geocoding.Resultado, error) {
	return m.fn(ctx, endereco)
}

type mockLocalidades struct {
	codigoFn    func(ctx context.Context, cidade, uf string) (int64, error)
	distritosFn func(ctx context.Context, codigo int64) ([]ibge.Distrito, error)
}

func (m *mockLocalidades) BuscarCodigoMunicipio(ctx context.Context, cidade, uf string) (int64, error) {
	return m.codigoFn(ctx, cidade, uf)
}

func (m *mockLocalidades) BuscarDistritos(ctx context.Context, codigo int64) ([]ibge.Distrito, error) {
	return m.distritosFn(ctx, codigo)
}

func lojaComCoordenadas() LojaRow {
	return LojaRow{
		ID:        1,
		Nome:      "Cantina da Praça",
		Endereco:  "Rua das Flores, 100",
		Latitude:  sql.NullFloat64{Float64: -23.5505, Valid: true},
		Longitude: sql.NullFloat64{Float64: -46.6333, Valid: true},
	}
}

func newTestService(repo InterfaceRepository, geocoder Geocoder, localidades Localidades) *Service {
	return NewBairrosService(repo, geocoder, localidades, 5.00, 7.50, 30.00, testLogger())
}

func TestCriarBairrosAutomaticamente(t *testing.T) {
	repo := &mockRepo{
		findLojaFn: func(ctx context.Context, idLoja int64) (LojaRow, error) {
			return lojaComCoordenadas(), nil
		},
	}
	// Coordenadas proximas da loja: ~1.11 km ao norte.
	geocoder := &mockGeocoder{fn: func(ctx context.Context, endereco string) (geocoding.Resultado, error) {
		return geocoding.Resultado{Latitude: -23.5405, Longitude: -46.6333, Encontrado: true}, nil
	}}
	localidades := &mockLocalidades{
		codigoFn: func(ctx context.Context, cidade, uf string) (int64, error) { return 3550308, nil },
		distritosFn: func(ctx context.Context, codigo int64) ([]ibge.Distrito, error) {
			return []ibge.Distrito{{ID: 1, Nome: "Centro"}, {ID: 2, Nome: "Liberdade"}}, nil
		},
	}

	criados, err := newTestService(repo, geocoder, localidades).
		CriarBairrosAutomaticamente(context.Background(), 1, CriarAutomaticoRequest{Cidade: "São Paulo", Uf: "SP"})
	require.NoError(t, err)
	require.Len(t, criados, 2)

	// taxa = 5.00 + ~1.11 km * 7.50
	assert.InDelta(t, 13.34, criados[0].TaxaEntrega, 0.2)
	assert.Greater(t, criados[0].TaxaEntrega, 5.00)
}

func TestCriarBairrosPulaExistentes(t *testing.T) {
	repo := &mockRepo{
		findLojaFn: func(ctx context.Context, idLoja int64) (LojaRow, error) {
			return lojaComCoordenadas(), nil
		},
		existsFn: func(ctx context.Context, idLoja int64, nome string) (bool, error) {
			return nome == "Centro", nil
		},
	}
	geocoder := &mockGeocoder{fn: func(ctx context.Context, endereco string) (geocoding.Resultado, error) {
		return geocoding.Resultado{Latitude: -23.55, Longitude: -46.63, Encontrado: true}, nil
	}}
	localidades := &mockLocalidades{
		codigoFn: func(ctx context.Context, cidade, uf string) (int64, error) { return 1, nil },
		distritosFn: func(ctx context.Context, codigo int64) ([]ibge.Distrito, error) {
			return []ibge.Distrito{{ID: 1, Nome: "Centro"}, {ID: 2, Nome: "Liberdade"}}, nil
		},
	}

	criados, err := newTestService(repo, geocoder, localidades).
		CriarBairrosAutomaticamente(context.Background(), 1, CriarAutomaticoRequest{Cidade: "São Paulo", Uf: "SP"})
	require.NoError(t, err)
	require.Len(t, criados, 1)
	assert.Equal(t, "Liberdade", criados[0].Nome)
}

func TestCriarBairrosTaxaLimitadaAoTeto(t *testing.T) {
	repo := &mockRepo{
		findLojaFn: func(ctx context.Context, idLoja int64) (LojaRow, error) {
			return lojaComCoordenadas(), nil
		},
	}
	// Bairro a centenas de quilometros: a taxa bruta passaria de 30.00.
	geocoder := &mockGeocoder{fn: func(ctx context.Context, endereco string) (geocoding.Resultado, error) {
		return geocoding.Resultado{Latitude: -22.9068, Longitude: -43.1729, Encontrado: true}, nil
	}}
	localidades := &mockLocalidades{
		codigoFn: func(ctx context.Context, cidade, uf string) (int64, error) { return 1, nil },
		distritosFn: func(ctx context.Context, codigo int64) ([]ibge.Distrito, error) {
			return []ibge.Distrito{{ID: 1, Nome: "Muito Longe"}}, nil
		},
	}

	criados, err := newTestService(repo, geocoder, localidades).
		CriarBairrosAutomaticamente(context.Background(), 1, CriarAutomaticoRequest{Cidade: "São Paulo", Uf: "SP"})
	require.NoError(t, err)
	require.Len(t, criados, 1)
	assert.Equal(t, 30.00, criados[0].TaxaEntrega)
}

func TestCriarBairrosSemCoordenadasUsaTaxaBase(t *testing.T) {
	repo := &mockRepo{
		findLojaFn: func(ctx context.Context, idLoja int64) (LojaRow, error) {
			return lojaComCoordenadas(), nil
		},
	}
	geocoder := &mockGeocoder{fn: func(ctx context.Context, endereco string) (geocoding.Resultado, error) {
		return geocoding.Resultado{}, errors.New("provedor indisponível")
	}}
	localidades := &mockLocalidades{
		codigoFn: func(ctx context.Context, cidade, uf string) (int64, error) { return 1, nil },
		distritosFn: func(ctx context.Context, codigo int64) ([]ibge.Distrito, error) {
			return []ibge.Distrito{{ID: 1, Nome: "Centro"}}, nil
		},
	}

	criados, err := newTestService(repo, geocoder, localidades).
		CriarBairrosAutomaticamente(context.Background(), 1, CriarAutomaticoRequest{Cidade: "São Paulo", Uf: "SP"})
	require.NoError(t, err)
	require.Len(t, criados, 1)
	assert.Equal(t, 5.00, criados[0].TaxaEntrega)
	assert.Zero(t, criados[0].Latitude)
}

func TestCriarBairrosAbortaSemCoordenadasDaLoja(t *testing.T) {
	repo := &mockRepo{
		findLojaFn: func(ctx context.Context, idLoja int64) (LojaRow, error) {
			return LojaRow{ID: 1, Nome: "Sem Coordenadas", Endereco: "Rua X"}, nil
		},
		createLoteFn: func(ctx context.Context, params []CreateBairroParams) ([]Bairro, error) {
			t.Fatal("nada deveria ser persistido")
			return nil, nil
		},
	}
	geocoder := &mockGeocoder{fn: func(ctx context.Context, endereco string) (geocoding.Resultado, error) {
		return geocoding.Resultado{}, geocoding.ErrNaoEncontrado
	}}
	localidades := &mockLocalidades{
		codigoFn: func(ctx context.Context, cidade, uf string) (int64, error) {
			t.Fatal("IBGE não deveria ser consultado")
			return 0, nil
		},
	}

	_, err := newTestService(repo, geocoder, localidades).
		CriarBairrosAutomaticamente(context.Background(), 1, CriarAutomaticoRequest{Cidade: "São Paulo", Uf: "SP"})
	require.ErrorIs(t, err, ErrCoordenadasLoja)
}

func TestCriarBairrosLojaInexistente(t *testing.T) {
	repo := &mockRepo{
		findLojaFn: func(ctx context.Context, idLoja int64) (LojaRow, error) {
			return LojaRow{}, sql.ErrNoRows
		},
	}

	_, err := newTestService(repo, nil, nil).
		CriarBairrosAutomaticamente(context.Background(), 99, CriarAutomaticoRequest{Cidade: "São Paulo", Uf: "SP"})
	require.ErrorIs(t, err, ErrLojaNaoEncontrada)
}

func TestCriarBairrosUsaTaxaPorKmDaRequisicao(t *testing.T) {
	loja := lojaComCoordenadas()
	loja.TaxaPorKm = sql.NullFloat64{Float64: 2.00, Valid: true}
	repo := &mockRepo{
		findLojaFn: func(ctx context.Context, idLoja int64) (LojaRow, error) { return loja, nil },
	}
	geocoder := &mockGeocoder{fn: func(ctx context.Context, endereco string) (geocoding.Resultado, error) {
		return geocoding.Resultado{Latitude: -23.5405, Longitude: -46.6333, Encontrado: true}, nil
	}}
	localidades := &mockLocalidades{
		codigoFn: func(ctx context.Context, cidade, uf string) (int64, error) { return 1, nil },
		distritosFn: func(ctx context.Context, codigo int64) ([]ibge.Distrito, error) {
			return []ibge.Distrito{{ID: 1, Nome: "Centro"}}, nil
		},
	}

	taxaPorKm := 10.00
	criados, err := newTestService(repo, geocoder, localidades).
		CriarBairrosAutomaticamente(context.Background(), 1, CriarAutomaticoRequest{
			Cidade: "São Paulo", Uf: "SP", TaxaPorKm: &taxaPorKm,
		})
	require.NoError(t, err)
	require.Len(t, criados, 1)
	// A taxa da requisicao vence a taxa cadastrada na loja.
	assert.InDelta(t, 5.00+1.11*10.00, criados[0].TaxaEntrega, 0.3)
}

func TestAtualizarTaxaBairroInexistente(t *testing.T) {
	repo := &mockRepo{
		updateTaxaFn: func(ctx context.Context, idBairro int64, novaTaxa float64) (Bairro, error) {
			return Bairro{}, sql.ErrNoRows
		},
	}

	_, err := newTestService(repo, nil, nil).AtualizarTaxa(context.Background(), 42, 12.50)
	require.ErrorIs(t, err, ErrBairroNaoEncontrado)
}

func TestBuscarBairrosPorCidadeSegueSemCoordenadas(t *testing.T) {
	geocoder := &mockGeocoder{fn: func(ctx context.Context, endereco string) (geocoding.Resultado, error) {
		return geocoding.Resultado{}, geocoding.ErrNaoEncontrado
	}}
	localidades := &mockLocalidades{
		codigoFn: func(ctx context.Context, cidade, uf string) (int64, error) { return 1, nil },
		distritosFn: func(ctx context.Context, codigo int64) ([]ibge.Distrito, error) {
			return []ibge.Distrito{{ID: 1, Nome: "Centro"}}, nil
		},
	}

	candidatos, err := newTestService(&mockRepo{}, geocoder, localidades).
		BuscarBairrosPorCidade(context.Background(), "São Paulo", "SP")
	require.NoError(t, err)
	require.Len(t, candidatos, 1)
	assert.Nil(t, candidatos[0].Latitude)
}
