package bairro

import (
	"database/sql"

	"pedidomestre/validation"
)

type Bairro struct {
	ID          int64
	IdLoja      int64
	Nome        string
	TaxaEntrega float64
	Latitude    sql.NullFloat64
	Longitude   sql.NullFloat64
}

// LojaRow e a visao da loja necessaria para o bootstrap de bairros.
type LojaRow struct {
	ID        int64
	Nome      string
	Endereco  string
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
	TaxaPorKm sql.NullFloat64
}

type CriarAutomaticoRequest struct {
	Cidade    string   `json:"cidade" validate:"required"`
	Uf        string   `json:"uf" validate:"required,len=2"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	TaxaPorKm *float64 `json:"taxa_por_km" validate:"omitempty,gt=0"`
}

type AtualizarTaxaRequest struct {
	NovaTaxa float64 `json:"nova_taxa" validate:"gte=0"`
}

type BairroResponse struct {
	ID          int64   `json:"id"`
	IdLoja      int64   `json:"id_loja"`
	Nome        string  `json:"nome"`
	TaxaEntrega float64 `json:"taxa_entrega"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

func (r *BairroResponse) ParseFromDb(result Bairro) {
	r.ID = result.ID
	r.IdLoja = result.IdLoja
	r.Nome = result.Nome
	r.TaxaEntrega = result.TaxaEntrega
	r.Latitude = validation.GetFloatFromNull(result.Latitude)
	r.Longitude = validation.GetFloatFromNull(result.Longitude)
}

// BairroCandidato e um bairro enumerado para a cidade, ainda sem taxa.
// Coordenadas ausentes indicam que a geocodificacao nao resolveu o nome.
type BairroCandidato struct {
	Nome      string   `json:"nome"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}
