package loja

import (
	"database/sql"
	"strings"

	"pedidomestre/validation"
)

// Status e o estado operacional da loja, normalizado na leitura do banco.
// O legado gravava texto livre ("aberta", "aberto", "open"), entao a
// normalizacao acontece uma unica vez em ParseStatus e o resto do codigo
// compara apenas o enum.
type Status string

const (
	StatusAberta  Status = "aberta"
	StatusFechada Status = "fechada"
)

func ParseStatus(valor string) Status {
	switch strings.ToLower(strings.TrimSpace(valor)) {
	case "aberta", "aberto", "open":
		return StatusAberta
	default:
		return StatusFechada
	}
}

type Loja struct {
	ID        int64
	Nome      string
	Cnpj      sql.NullString
	Telefone  sql.NullString
	Endereco  string
	Status    Status
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
	TaxaPorKm sql.NullFloat64
	RaioKm    sql.NullFloat64
}

type CreateLojaRequest struct {
	Nome      string   `json:"nome" validate:"required"`
	Cnpj      string   `json:"cnpj" validate:"omitempty,len=14"`
	Telefone  string   `json:"telefone"`
	Endereco  string   `json:"endereco" validate:"required"`
	Status    string   `json:"status"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	TaxaPorKm *float64 `json:"taxa_por_km" validate:"omitempty,gt=0"`
	RaioKm    *float64 `json:"raio_km" validate:"omitempty,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type LojaResponse struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Cnpj      string  `json:"cnpj,omitempty"`
	Telefone  string  `json:"telefone,omitempty"`
	Endereco  string  `json:"endereco"`
	Status    Status  `json:"status"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	TaxaPorKm float64 `json:"taxa_por_km,omitempty"`
	RaioKm    float64 `json:"raio_km,omitempty"`
}

func (r *LojaResponse) ParseFromDb(result Loja) {
	r.ID = result.ID
	r.Nome = result.Nome
	r.Endereco = result.Endereco
	r.Status = result.Status
	r.Cnpj = validation.GetStringFromNull(result.Cnpj)
	r.Telefone = validation.GetStringFromNull(result.Telefone)
	r.Latitude = validation.GetFloatFromNull(result.Latitude)
	r.Longitude = validation.GetFloatFromNull(result.Longitude)
	r.TaxaPorKm = validation.GetFloatFromNull(result.TaxaPorKm)
	r.RaioKm = validation.GetFloatFromNull(result.RaioKm)
}
