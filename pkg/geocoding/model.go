package geocoding

import (
	"context"
	"errors"
)

// ErrNaoEncontrado indica que nenhum provedor resolveu o endereco.
// E um resultado recuperavel: o chamador pode cair para cadastro manual.
var ErrNaoEncontrado = errors.New("endereço não encontrado")

// Resultado e a forma normalizada devolvida por todos os provedores.
type Resultado struct {
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Cidade            string  `json:"cidade,omitempty"`
	Uf                string  `json:"uf,omitempty"`
	EnderecoFormatado string  `json:"endereco_formatado,omitempty"`
	Encontrado        bool    `json:"-"`
}

// Provider resolve um endereco em texto livre para coordenadas. Cada
// adaptador conhece apenas o formato de resposta do seu provedor.
type Provider interface {
	Nome() string
	BuscarCoordenadas(ctx context.Context, endereco string) (Resultado, error)
}
