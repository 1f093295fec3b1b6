package cnpj

import (
	"context"
	"errors"
)

// ErrCnpjNaoEncontrado indica CNPJ desconhecido por todos os provedores.
var ErrCnpjNaoEncontrado = errors.New("CNPJ não encontrado")

// Info e o cadastro normalizado da empresa. Valido reflete apenas a
// situacao cadastral informada pelo provedor (registro ativo).
type Info struct {
	Cnpj         string `json:"cnpj"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia,omitempty"`
	Situacao     string `json:"situacao"`
	Logradouro   string `json:"logradouro,omitempty"`
	Numero       string `json:"numero,omitempty"`
	Complemento  string `json:"complemento,omitempty"`
	Bairro       string `json:"bairro,omitempty"`
	Cidade       string `json:"cidade,omitempty"`
	Uf           string `json:"uf,omitempty"`
	Cep          string `json:"cep,omitempty"`
	Valido       bool   `json:"valido"`
}

// Provider consulta um servico de cadastro de empresas. Cada adaptador
// conhece apenas os nomes de campo do seu provedor.
type Provider interface {
	Nome() string
	Consultar(ctx context.Context, cnpj string) (Info, error)
}
