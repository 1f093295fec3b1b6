package cnpj

import cnpjapi "pedidomestre/pkg/cnpj"

type CnpjResponse struct {
	Cnpj         string `json:"cnpj"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia,omitempty"`
	Situacao     string `json:"situacao"`
	Valido       bool   `json:"valido"`
	Logradouro   string `json:"logradouro,omitempty"`
	Numero       string `json:"numero,omitempty"`
	Complemento  string `json:"complemento,omitempty"`
	Bairro       string `json:"bairro,omitempty"`
	Cidade       string `json:"cidade,omitempty"`
	Uf           string `json:"uf,omitempty"`
	Cep          string `json:"cep,omitempty"`
}

func (r *CnpjResponse) ParseFromInfo(info cnpjapi.Info) {
	r.Cnpj = info.Cnpj
	r.RazaoSocial = info.RazaoSocial
	r.NomeFantasia = info.NomeFantasia
	r.Situacao = info.Situacao
	r.Valido = info.Valido
	r.Logradouro = info.Logradouro
	r.Numero = info.Numero
	r.Complemento = info.Complemento
	r.Bairro = info.Bairro
	r.Cidade = info.Cidade
	r.Uf = info.Uf
	r.Cep = info.Cep
}
