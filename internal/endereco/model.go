package endereco

import (
	"database/sql"

	"pedidomestre/validation"
)

type Endereco struct {
	ID          int64
	Logradouro  string
	Numero      sql.NullString
	Complemento sql.NullString
	Bairro      sql.NullString
	Cidade      string
	Uf          string
	Cep         sql.NullString
	Latitude    sql.NullFloat64
	Longitude   sql.NullFloat64
}

type CreateEnderecoRequest struct {
	Logradouro  string `json:"logradouro" validate:"required"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade" validate:"required"`
	Uf          string `json:"uf" validate:"required,len=2"`
	Cep         string `json:"cep"`
}

type EnderecoResponse struct {
	ID          int64   `json:"id"`
	Logradouro  string  `json:"logradouro"`
	Numero      string  `json:"numero,omitempty"`
	Complemento string  `json:"complemento,omitempty"`
	Bairro      string  `json:"bairro,omitempty"`
	Cidade      string  `json:"cidade"`
	Uf          string  `json:"uf"`
	Cep         string  `json:"cep,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

func (r *EnderecoResponse) ParseFromDb(result Endereco) {
	r.ID = result.ID
	r.Logradouro = result.Logradouro
	r.Cidade = result.Cidade
	r.Uf = result.Uf
	r.Numero = validation.GetStringFromNull(result.Numero)
	r.Complemento = validation.GetStringFromNull(result.Complemento)
	r.Bairro = validation.GetStringFromNull(result.Bairro)
	r.Cep = validation.GetStringFromNull(result.Cep)
	r.Latitude = validation.GetFloatFromNull(result.Latitude)
	r.Longitude = validation.GetFloatFromNull(result.Longitude)
}
