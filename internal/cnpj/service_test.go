package cnpj

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnpjapi "pedidomestre/pkg/cnpj"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockRegistro struct {
	chamadas int
	fn       func(ctx context.Context, cnpj string) (cnpjapi.Info, error)
}

func (m *mockRegistro) Consultar(ctx context.Context, cnpj string) (cnpjapi.Info, error) {
	m.chamadas++
	return m.fn(ctx, cnpj)
}

func TestConsultarCnpjAceitaPontuacao(t *testing.T) {
	registro := &mockRegistro{fn: func(ctx context.Context, cnpj string) (cnpjapi.Info, error) {
		assert.Equal(t, "11222333000181", cnpj)
		return cnpjapi.Info{Cnpj: cnpj, RazaoSocial: "Empresa Alfa", Situacao: "ATIVA", Valido: true}, nil
	}}

	resposta, err := NewCnpjService(registro, nil, testLogger()).
		ConsultarCnpj(context.Background(), "11.222.333/0001-81")
	require.NoError(t, err)
	assert.Equal(t, "Empresa Alfa", resposta.RazaoSocial)
	assert.True(t, resposta.Valido)
	assert.Equal(t, 1, registro.chamadas)
}

func TestConsultarCnpjDigitoVerificadorInvalido(t *testing.T) {
	registro := &mockRegistro{fn: func(ctx context.Context, cnpj string) (cnpjapi.Info, error) {
		t.Fatal("provedor não deveria ser consultado")
		return cnpjapi.Info{}, nil
	}}

	_, err := NewCnpjService(registro, nil, testLogger()).
		ConsultarCnpj(context.Background(), "11222333000180")
	require.ErrorIs(t, err, ErrCnpjInvalido)
	assert.Equal(t, 0, registro.chamadas)
}

func TestConsultarCnpjPropagaNaoEncontrado(t *testing.T) {
	registro := &mockRegistro{fn: func(ctx context.Context, cnpj string) (cnpjapi.Info, error) {
		return cnpjapi.Info{}, cnpjapi.ErrCnpjNaoEncontrado
	}}

	_, err := NewCnpjService(registro, nil, testLogger()).
		ConsultarCnpj(context.Background(), "11222333000181")
	require.ErrorIs(t, err, cnpjapi.ErrCnpjNaoEncontrado)
}

func TestConsultarCnpjErroDeProvedor(t *testing.T) {
	falha := errors.New("indisponível")
	registro := &mockRegistro{fn: func(ctx context.Context, cnpj string) (cnpjapi.Info, error) {
		return cnpjapi.Info{}, falha
	}}

	_, err := NewCnpjService(registro, nil, testLogger()).
		ConsultarCnpj(context.Background(), "11222333000181")
	require.ErrorIs(t, err, falha)
}
