package bairro

import (
	"context"
	"database/sql"
)

type CreateBairroParams struct {
	IdLoja      int64
	Nome        string
	TaxaEntrega float64
	Latitude    sql.NullFloat64
	Longitude   sql.NullFloat64
}

type InterfaceRepository interface {
	FindLojaByID(ctx context.Context, idLoja int64) (LojaRow, error)
	UpdateLojaCoordenadas(ctx context.Context, idLoja int64, latitude, longitude float64) error
	ExistsBairro(ctx context.Context, idLoja int64, nome string) (bool, error)
	CreateBairrosEmLote(ctx context.Context, params []CreateBairroParams) ([]Bairro, error)
	UpdateTaxa(ctx context.Context, idBairro int64, novaTaxa float64) (Bairro, error)
}

type Repository struct {
	Conn *sql.DB
}

func NewBairrosRepository(conn *sql.DB) *Repository {
	return &Repository{Conn: conn}
}

func (r *Repository) FindLojaByID(ctx context.Context, idLoja int64) (LojaRow, error) {
	var loja LojaRow
	err := r.Conn.QueryRowContext(ctx, `
		SELECT id_loja, nome, endereco, latitude, longitude, taxa_por_km
		FROM lojas
		WHERE id_loja = $1`, idLoja).
		Scan(&loja.ID, &loja.Nome, &loja.Endereco, &loja.Latitude, &loja.Longitude, &loja.TaxaPorKm)
	return loja, err
}

func (r *Repository) UpdateLojaCoordenadas(ctx context.Context, idLoja int64, latitude, longitude float64) error {
	_, err := r.Conn.ExecContext(ctx, `
		UPDATE lojas
		SET latitude = $2, longitude = $3, updated_at = now()
		WHERE id_loja = $1`, idLoja, latitude, longitude)
	return err
}

func (r *Repository) ExistsBairro(ctx context.Context, idLoja int64, nome string) (bool, error) {
	var existe bool
	err := r.Conn.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bairros WHERE id_loja = $1 AND lower(nome) = lower($2)
		)`, idLoja, nome).Scan(&existe)
	return existe, err
}

// CreateBairrosEmLote insere os bairros em uma unica transacao. Conflitos em
// (id_loja, nome) sao ignorados, entao apenas as linhas realmente criadas
// voltam no resultado.
func (r *Repository) CreateBairrosEmLote(ctx context.Context, params []CreateBairroParams) ([]Bairro, error) {
	criados := make([]Bairro, 0, len(params))
	if len(params) == 0 {
		return criados, nil
	}

	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bairros (id_loja, nome, taxa_entrega, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id_loja, nome) DO NOTHING
		RETURNING id_bairro, id_loja, nome, taxa_entrega, latitude, longitude`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for _, p := range params {
		var b Bairro
		err := stmt.QueryRowContext(ctx, p.IdLoja, p.Nome, p.TaxaEntrega, p.Latitude, p.Longitude).
			Scan(&b.ID, &b.IdLoja, &b.Nome, &b.TaxaEntrega, &b.Latitude, &b.Longitude)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, err
		}
		criados = append(criados, b)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return criados, nil
}

func (r *Repository) UpdateTaxa(ctx context.Context, idBairro int64, novaTaxa float64) (Bairro, error) {
	var b Bairro
	err := r.Conn.QueryRowContext(ctx, `
		UPDATE bairros
		SET taxa_entrega = $2, updated_at = now()
		WHERE id_bairro = $1
		RETURNING id_bairro, id_loja, nome, taxa_entrega, latitude, longitude`, idBairro, novaTaxa).
		Scan(&b.ID, &b.IdLoja, &b.Nome, &b.TaxaEntrega, &b.Latitude, &b.Longitude)
	return b, err
}
