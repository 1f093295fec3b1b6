package endereco

import (
	"context"
	"database/sql"
)

type CreateEnderecoParams struct {
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

type InterfaceRepository interface {
	CreateEndereco(ctx context.Context, params CreateEnderecoParams) (Endereco, error)
	FindEnderecoByID(ctx context.Context, idEndereco int64) (Endereco, error)
}

type Repository struct {
	Conn *sql.DB
}

func NewEnderecosRepository(conn *sql.DB) *Repository {
	return &Repository{Conn: conn}
}

const enderecoColunas = "id_endereco, logradouro, numero, complemento, bairro, cidade, uf, cep, latitude, longitude"

func scanEndereco(row interface{ Scan(...any) error }) (Endereco, error) {
	var e Endereco
	err := row.Scan(&e.ID, &e.Logradouro, &e.Numero, &e.Complemento, &e.Bairro,
		&e.Cidade, &e.Uf, &e.Cep, &e.Latitude, &e.Longitude)
	return e, err
}

func (r *Repository) CreateEndereco(ctx context.Context, params CreateEnderecoParams) (Endereco, error) {
	row := r.Conn.QueryRowContext(ctx, `
		INSERT INTO enderecos (logradouro, numero, complemento, bairro, cidade, uf, cep, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+enderecoColunas,
		params.Logradouro, params.Numero, params.Complemento, params.Bairro,
		params.Cidade, params.Uf, params.Cep, params.Latitude, params.Longitude)
	return scanEndereco(row)
}

func (r *Repository) FindEnderecoByID(ctx context.Context, idEndereco int64) (Endereco, error) {
	row := r.Conn.QueryRowContext(ctx, `
		SELECT `+enderecoColunas+` FROM enderecos WHERE id_endereco = $1`, idEndereco)
	return scanEndereco(row)
}
