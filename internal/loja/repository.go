package loja

import (
	"context"
	"database/sql"
)

type CreateLojaParams struct {
	Nome      string
	Cnpj      sql.NullString
	Telefone  sql.NullString
	Endereco  string
	Status    string
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
	TaxaPorKm sql.NullFloat64
	RaioKm    sql.NullFloat64
}

type InterfaceRepository interface {
	CreateLoja(ctx context.Context, params CreateLojaParams) (Loja, error)
	FindLojaByID(ctx context.Context, idLoja int64) (Loja, error)
	FindAllLojas(ctx context.Context) ([]Loja, error)
	UpdateStatus(ctx context.Context, idLoja int64, status string) (Loja, error)
}

type Repository struct {
	Conn *sql.DB
}

func NewLojasRepository(conn *sql.DB) *Repository {
	return &Repository{Conn: conn}
}

const lojaColunas = "id_loja, nome, cnpj, telefone, endereco, status, latitude, longitude, taxa_por_km, raio_km"

func scanLoja(row interface{ Scan(...any) error }) (Loja, error) {
	var l Loja
	var status string
	err := row.Scan(&l.ID, &l.Nome, &l.Cnpj, &l.Telefone, &l.Endereco, &status, &l.Latitude, &l.Longitude, &l.TaxaPorKm, &l.RaioKm)
	if err != nil {
		return Loja{}, err
	}
	l.Status = ParseStatus(status)
	return l, nil
}

func (r *Repository) CreateLoja(ctx context.Context, params CreateLojaParams) (Loja, error) {
	row := r.Conn.QueryRowContext(ctx, `
		INSERT INTO lojas (nome, cnpj, telefone, endereco, status, latitude, longitude, taxa_por_km, raio_km)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+lojaColunas,
		params.Nome, params.Cnpj, params.Telefone, params.Endereco, params.Status,
		params.Latitude, params.Longitude, params.TaxaPorKm, params.RaioKm)
	return scanLoja(row)
}

func (r *Repository) FindLojaByID(ctx context.Context, idLoja int64) (Loja, error) {
	row := r.Conn.QueryRowContext(ctx, `
		SELECT `+lojaColunas+` FROM lojas WHERE id_loja = $1`, idLoja)
	return scanLoja(row)
}

func (r *Repository) FindAllLojas(ctx context.Context) ([]Loja, error) {
	rows, err := r.Conn.QueryContext(ctx, `
		SELECT `+lojaColunas+` FROM lojas ORDER BY nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lojas []Loja
	for rows.Next() {
		l, err := scanLoja(rows)
		if err != nil {
			return nil, err
		}
		lojas = append(lojas, l)
	}
	return lojas, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, idLoja int64, status string) (Loja, error) {
	row := r.Conn.QueryRowContext(ctx, `
		UPDATE lojas
		SET status = $2, updated_at = now()
		WHERE id_loja = $1
		RETURNING `+lojaColunas, idLoja, status)
	return scanLoja(row)
}
