package taxa_entrega

import (
	"context"
	"database/sql"

	"pedidomestre/internal/loja"
)

type InterfaceRepository interface {
	FindEnderecoByID(ctx context.Context, idEndereco int64) (EnderecoRow, error)
	FindCoberturaPorBairro(ctx context.Context, nomeBairro string) ([]CoberturaRow, error)
}

type Repository struct {
	Conn *sql.DB
}

func NewTaxaEntregaRepository(conn *sql.DB) *Repository {
	return &Repository{Conn: conn}
}

func (r *Repository) FindEnderecoByID(ctx context.Context, idEndereco int64) (EnderecoRow, error) {
	var endereco EnderecoRow
	err := r.Conn.QueryRowContext(ctx, `
		SELECT id_endereco, bairro, latitude, longitude
		FROM enderecos
		WHERE id_endereco = $1`, idEndereco).
		Scan(&endereco.ID, &endereco.Bairro, &endereco.Latitude, &endereco.Longitude)
	return endereco, err
}

// FindCoberturaPorBairro casa a cobertura pelo nome do bairro em qualquer
// loja. O casamento por nome e herdado do modelo de dados: nao existe vinculo
// entre o endereco do cliente e uma loja especifica.
func (r *Repository) FindCoberturaPorBairro(ctx context.Context, nomeBairro string) ([]CoberturaRow, error) {
	rows, err := r.Conn.QueryContext(ctx, `
		SELECT l.id_loja, l.nome, l.status, l.latitude, l.longitude, l.raio_km, b.taxa_entrega
		FROM bairros b
		JOIN lojas l ON l.id_loja = b.id_loja
		WHERE lower(b.nome) = lower($1)`, nomeBairro)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cobertura []CoberturaRow
	for rows.Next() {
		var c CoberturaRow
		var status string
		if err := rows.Scan(&c.IdLoja, &c.NomeLoja, &status, &c.Latitude, &c.Longitude, &c.RaioKm, &c.TaxaEntrega); err != nil {
			return nil, err
		}
		c.Status = loja.ParseStatus(status)
		cobertura = append(cobertura, c)
	}
	return cobertura, rows.Err()
}
