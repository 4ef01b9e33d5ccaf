package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, nome, cpf, email, telefone, endereco, created_at, updated_at`

// ClientRepo implementação do porto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador de persistência para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var phone, address *string
	err := row.Scan(
		&c.ID, &c.Name, &c.CPF, &c.Email, &phone, &address,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone != nil {
		c.Phone = *phone
	}
	if address != nil {
		c.Address = *address
	}
	return &c, nil
}

// Create persiste um novo cliente e preenche client.ID.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clientes (nome, cpf, email, telefone, endereco, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		client.Name, client.CPF, client.Email, client.Phone, client.Address,
		client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		return translateWriteError("insert cliente", err)
	}
	return nil
}

// GetByID obtém um cliente por id. Devolve (nil, nil) quando não existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clientes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get cliente", err)
	}
	return c, nil
}

// List devolve clientes paginados ordenados por nome.
func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+clientColumns+` FROM clientes ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, domain.NewStorageError("list clientes", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, domain.NewStorageError("scan cliente", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list clientes", err)
	}
	return clients, nil
}

// Update grava todos os campos mutáveis do cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clientes
		SET nome = $1, cpf = $2, email = $3, telefone = NULLIF($4, ''), endereco = NULLIF($5, ''), updated_at = $6
		WHERE id = $7`
	tag, err := r.q.Exec(ctx, query,
		client.Name, client.CPF, client.Email, client.Phone, client.Address,
		client.UpdatedAt, client.ID,
	)
	if err != nil {
		return translateWriteError("update cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// Delete remove o cliente; vendas associadas ficam com cliente_id nulo.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return translateWriteError("delete cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
