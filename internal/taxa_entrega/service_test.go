package taxa_entrega

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedidomestre/internal/loja"
	"pedidomestre/pkg/geodist"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockRepo struct {
	enderecoFn  func(ctx context.Context, idEndereco int64) (EnderecoRow, error)
	coberturaFn func(ctx context.Context, nomeBairro string) ([]CoberturaRow, error)
}

func (m *mockRepo) FindEnderecoByID(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
	return m.enderecoFn(ctx, idEndereco)
}

func (m *mockRepo) FindCoberturaPorBairro(ctx context.Context, nomeBairro string) ([]CoberturaRow, error) {
	return m.coberturaFn(ctx, nomeBairro)
}

func coordenada(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

// enderecoCentro fica na origem das distancias dos testes.
func enderecoCentro() EnderecoRow {
	return EnderecoRow{
		ID:        1,
		Bairro:    sql.NullString{String: "Centro", Valid: true},
		Latitude:  coordenada(-23.5505),
		Longitude: coordenada(-46.6333),
	}
}

// lojaADistancia devolve uma loja aberta deslocada para o norte de modo que a
// distancia ate enderecoCentro seja aproximadamente km quilometros.
func lojaADistancia(id int64, nome string, km float64) CoberturaRow {
	return CoberturaRow{
		IdLoja:      id,
		NomeLoja:    nome,
		Status:      loja.StatusAberta,
		Latitude:    coordenada(-23.5505 + km/111.2),
		Longitude:   coordenada(-46.6333),
		TaxaEntrega: 8.00,
	}
}

func newTestService(repo InterfaceRepository) *Service {
	return NewTaxaEntregaService(repo, 1.00, testLogger())
}

func TestCalcularTaxaLojaMaisProximaVence(t *testing.T) {
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{
				lojaADistancia(1, "Loja Perto", 2),
				lojaADistancia(2, "Loja Longe", 5),
			}, nil
		},
	}

	resultado, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resultado.IdLoja)
	assert.True(t, resultado.LojaMaisProxima)
	assert.Equal(t, 8.00, resultado.TaxaEntrega)
	assert.Empty(t, resultado.Observacao)
	assert.InDelta(t, 2.0, resultado.DistanciaKm, 0.1)
}

func TestCalcularTaxaPreferidaVenceComAdicional(t *testing.T) {
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{
				lojaADistancia(1, "Loja Perto", 2),
				lojaADistancia(2, "Loja Longe", 5),
			}, nil
		},
	}

	preferida := int64(2)
	resultado, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, &preferida)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resultado.IdLoja)
	assert.False(t, resultado.LojaMaisProxima)
	// 8.00 declarados mais ~3 km extras a 1.00 por km.
	assert.InDelta(t, 11.00, resultado.TaxaEntrega, 0.1)
	assert.NotEmpty(t, resultado.Observacao)
}

func TestCalcularTaxaPreferidaForaDoRaioCaiParaMaisProxima(t *testing.T) {
	longe := lojaADistancia(2, "Loja Longe", 5)
	longe.RaioKm = sql.NullFloat64{Float64: 3, Valid: true}
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{lojaADistancia(1, "Loja Perto", 2), longe}, nil
		},
	}

	preferida := int64(2)
	resultado, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, &preferida)
	// A preferida excluida pelo raio nao gera erro, apenas perde a vez.
	require.NoError(t, err)
	assert.Equal(t, int64(1), resultado.IdLoja)
	assert.True(t, resultado.LojaMaisProxima)
	assert.Equal(t, 8.00, resultado.TaxaEntrega)
}

func TestCalcularTaxaPreferidaFechada(t *testing.T) {
	fechada := lojaADistancia(7, "Loja Única", 2)
	fechada.Status = loja.StatusFechada
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{fechada}, nil
		},
	}

	preferida := int64(7)
	_, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, &preferida)
	require.ErrorIs(t, err, ErrLojaPreferidaFechada)
}

func TestCalcularTaxaNenhumaLojaAberta(t *testing.T) {
	fechada := lojaADistancia(7, "Loja Única", 2)
	fechada.Status = loja.StatusFechada
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{fechada}, nil
		},
	}

	// Sem preferencia, a mesma situacao produz o erro generico.
	_, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrNenhumaLojaAberta)

	// Preferencia fora do conjunto de cobertura tambem produz o generico.
	outra := int64(99)
	_, err = newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, &outra)
	require.ErrorIs(t, err, ErrNenhumaLojaAberta)
}

func TestCalcularTaxaTodasForaDoRaio(t *testing.T) {
	longe := lojaADistancia(1, "Loja Longe", 10)
	longe.RaioKm = sql.NullFloat64{Float64: 4, Valid: true}
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{longe}, nil
		},
	}

	_, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrForaDoRaio)
}

func TestCalcularTaxaSemRaioNuncaExclui(t *testing.T) {
	// Sem raio declarado a loja atende a qualquer distancia.
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{lojaADistancia(1, "Loja Sem Raio", 50)}, nil
		},
	}

	resultado, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resultado.IdLoja)
}

func TestCalcularTaxaSemCobertura(t *testing.T) {
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return nil, nil
		},
	}

	_, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrSemCobertura)
}

func TestCalcularTaxaEnderecoInexistente(t *testing.T) {
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return EnderecoRow{}, sql.ErrNoRows
		},
	}

	_, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrEnderecoNaoEncontrado)
}

func TestCalcularTaxaEnderecoSemBairro(t *testing.T) {
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return EnderecoRow{ID: 1}, nil
		},
	}

	_, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrEnderecoNaoEncontrado)
}

func TestCalcularTaxaEnderecoSemCoordenadasTrataDistanciaComoZero(t *testing.T) {
	endereco := enderecoCentro()
	endereco.Latitude = sql.NullFloat64{}
	endereco.Longitude = sql.NullFloat64{}
	comRaio := lojaADistancia(1, "Loja Com Raio", 50)
	comRaio.RaioKm = sql.NullFloat64{Float64: 3, Valid: true}
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return endereco, nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{comRaio}, nil
		},
	}

	resultado, err := newTestService(repo).CalcularTaxaEntrega(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Zero(t, resultado.DistanciaKm)
}

func TestObterLojasDisponiveisOrdenadasPorDistancia(t *testing.T) {
	fechada := lojaADistancia(3, "Loja Fechada", 1)
	fechada.Status = loja.StatusFechada
	foraDoRaio := lojaADistancia(4, "Loja Fora do Raio", 9)
	foraDoRaio.RaioKm = coordenada(3)
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{
				lojaADistancia(2, "Loja Longe", 5),
				lojaADistancia(1, "Loja Perto", 2),
				fechada,
				foraDoRaio,
			}, nil
		},
	}

	disponiveis, err := newTestService(repo).ObterLojasDisponiveis(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, disponiveis, 4)
	assert.Equal(t, int64(3), disponiveis[0].IdLoja)
	assert.Equal(t, loja.StatusFechada, disponiveis[0].Status)
	assert.Equal(t, int64(1), disponiveis[1].IdLoja)
	assert.Equal(t, loja.StatusAberta, disponiveis[1].Status)
	assert.Equal(t, int64(2), disponiveis[2].IdLoja)
	assert.Equal(t, int64(4), disponiveis[3].IdLoja)
}

func TestObterLojasDisponiveisAbertaPrimeiroEmEmpate(t *testing.T) {
	fechada := lojaADistancia(1, "Loja Fechada", 2)
	fechada.Status = loja.StatusFechada
	repo := &mockRepo{
		enderecoFn: func(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
			return enderecoCentro(), nil
		},
		coberturaFn: func(ctx context.Context, nome string) ([]CoberturaRow, error) {
			return []CoberturaRow{
				fechada,
				lojaADistancia(2, "Loja Aberta", 2),
			}, nil
		},
	}

	disponiveis, err := newTestService(repo).ObterLojasDisponiveis(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, disponiveis, 2)
	assert.Equal(t, int64(2), disponiveis[0].IdLoja)
	assert.Equal(t, int64(1), disponiveis[1].IdLoja)
}

func TestDistanciaDoHelperDeTeste(t *testing.T) {
	l := lojaADistancia(1, "Loja", 5)
	d := geodist.DistanciaKmNull(coordenada(-23.5505), coordenada(-46.6333), l.Latitude, l.Longitude)
	assert.InDelta(t, 5.0, d, 0.1)
}
