package geocoding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	nome     string
	chamadas int
	fn       func(ctx context.Context, endereco string) (Resultado, error)
}

func (m *mockProvider) Nome() string { return m.nome }

func (m *mockProvider) BuscarCoordenadas(ctx context.Context, endereco string) (Resultado, error) {
	m.chamadas++
	return m.fn(ctx, endereco)
}

func TestGatewayPrimarioResolve(t *testing.T) {
	primario := &mockProvider{nome: "primario", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		return Resultado{Latitude: -23.5, Longitude: -46.6, Encontrado: true}, nil
	}}
	reserva := &mockProvider{nome: "reserva", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		t.Fatal("reserva não deveria ser consultada")
		return Resultado{}, nil
	}}

	resultado, err := NewGateway(testLogger(), primario, reserva).BuscarCoordenadas(context.Background(), "Centro")
	require.NoError(t, err)
	assert.True(t, resultado.Encontrado)
	assert.Equal(t, 1, primario.chamadas)
	assert.Equal(t, 0, reserva.chamadas)
}

func TestGatewayVazioCaiParaReserva(t *testing.T) {
	primario := &mockProvider{nome: "primario", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		return Resultado{}, nil
	}}
	reserva := &mockProvider{nome: "reserva", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		return Resultado{Latitude: -22.9, Longitude: -43.1, Encontrado: true}, nil
	}}

	resultado, err := NewGateway(testLogger(), primario, reserva).BuscarCoordenadas(context.Background(), "Centro")
	require.NoError(t, err)
	assert.True(t, resultado.Encontrado)
	assert.InDelta(t, -22.9, resultado.Latitude, 0.0001)
	// O primario e consultado uma unica vez antes de cair para a reserva.
	assert.Equal(t, 1, primario.chamadas)
	assert.Equal(t, 1, reserva.chamadas)
}

func TestGatewayErroCaiParaReserva(t *testing.T) {
	primario := &mockProvider{nome: "primario", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		return Resultado{}, errors.New("timeout")
	}}
	reserva := &mockProvider{nome: "reserva", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		return Resultado{Latitude: -1, Longitude: -2, Encontrado: true}, nil
	}}

	resultado, err := NewGateway(testLogger(), primario, reserva).BuscarCoordenadas(context.Background(), "Centro")
	require.NoError(t, err)
	assert.True(t, resultado.Encontrado)
}

func TestGatewayTodosFalhamRetornaNaoEncontrado(t *testing.T) {
	primario := &mockProvider{nome: "primario", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		return Resultado{}, nil
	}}
	reserva := &mockProvider{nome: "reserva", fn: func(ctx context.Context, endereco string) (Resultado, error) {
		return Resultado{}, errors.New("indisponível")
	}}

	_, err := NewGateway(testLogger(), primario, reserva).BuscarCoordenadas(context.Background(), "Centro")
	require.ErrorIs(t, err, ErrNaoEncontrado)
}
