package taxa_entrega

import (
	"database/sql"

	"pedidomestre/internal/loja"
)

// EnderecoRow e o recorte do endereco do cliente usado pelo calculo.
type EnderecoRow struct {
	ID        int64
	Bairro    sql.NullString
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
}

// CoberturaRow junta a loja com a taxa declarada para o bairro. A cobertura e
// casada pelo nome do bairro, nao por chave estrangeira, entao lojas de
// cidades diferentes com bairros homonimos aparecem juntas aqui.
type CoberturaRow struct {
	IdLoja      int64
	NomeLoja    string
	Status      loja.Status
	Latitude    sql.NullFloat64
	Longitude   sql.NullFloat64
	RaioKm      sql.NullFloat64
	TaxaEntrega float64
}

type ResultadoTaxaEntrega struct {
	IdLoja          int64   `json:"id_loja"`
	NomeLoja        string  `json:"nome_loja"`
	TaxaEntrega     float64 `json:"taxa_entrega"`
	DistanciaKm     float64 `json:"distancia_km"`
	LojaMaisProxima bool    `json:"loja_mais_proxima"`
	Observacao      string  `json:"observacao,omitempty"`
}

type LojaDisponivel struct {
	IdLoja      int64       `json:"id_loja"`
	NomeLoja    string      `json:"nome_loja"`
	Status      loja.Status `json:"status"`
	TaxaEntrega float64     `json:"taxa_entrega"`
	DistanciaKm float64     `json:"distancia_km"`
}
