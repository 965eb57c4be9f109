package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{
		pool: pool,
	}
}

func (r *ClientRepository) CreateClient(ctx context.Context, c entity.Client) (entity.Client, error) {
	const q = `
	INSERT INTO clients (
		id,
		store_front_name,
		cnpj,
		company_name,
		cep,
		street,
		neighborhood,
		city,
		state,
		number,
		complement,
		status,
		phone,
		email,
		contact_person,
		assigned_user_id,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.pool.Exec(ctx, q,
		c.ID,
		c.StoreFrontName,
		c.CNPJ,
		c.CompanyName,
		c.CEP,
		c.Street,
		c.Neighborhood,
		c.City,
		c.State,
		c.Number,
		zeronull.Text(c.Complement),
		c.Status,
		zeronull.Text(c.Phone),
		zeronull.Text(c.Email),
		zeronull.Text(c.ContactPerson),
		c.AssignedUserID,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "cnpj"):
			return entity.Client{}, entity.ErrDuplicateCNPJ
		case isForeignKeyViolation(err):
			return entity.Client{}, entity.ErrUserNotFound
		}

		return entity.Client{}, fmt.Errorf("insert client: %w", err)
	}

	return c, nil
}

func (r *ClientRepository) ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	return r.clientBy(ctx, sq.Eq{"c.id": id})
}

func (r *ClientRepository) ClientByCNPJ(ctx context.Context, cnpj string) (entity.Client, error) {
	return r.clientBy(ctx, sq.Eq{"c.cnpj": cnpj})
}

func (r *ClientRepository) clientBy(ctx context.Context, pred sq.Sqlizer) (entity.Client, error) {
	q, args, err := selectClients().Where(pred).ToSql()
	if err != nil {
		return entity.Client{}, err
	}

	c, err := scanClient(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrClientNotFound
		}

		return entity.Client{}, fmt.Errorf("select client: %w", err)
	}

	return c, nil
}

func (r *ClientRepository) Clients(ctx context.Context, f entity.ClientFilter) ([]entity.Client, error) {
	return r.selectClients(ctx, applyClientFilter(selectClients(), f))
}

func (r *ClientRepository) ClientsByAssignedUser(ctx context.Context, userID uuid.UUID) ([]entity.Client, error) {
	stmt := selectClients().
		Where(sq.Eq{"c.assigned_user_id": userID}).
		OrderBy("c.created_at DESC")

	return r.selectClients(ctx, stmt)
}

func (r *ClientRepository) selectClients(ctx context.Context, stmt sq.SelectBuilder) ([]entity.Client, error) {
	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select clients: %w", err)
	}
	defer rows.Close()

	clients := make([]entity.Client, 0)

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) UpdateClient(ctx context.Context, c entity.Client) error {
	stmt := sq.Update("clients").
		SetMap(map[string]any{
			"store_front_name": c.StoreFrontName,
			"cnpj":             c.CNPJ,
			"company_name":     c.CompanyName,
			"cep":              c.CEP,
			"street":           c.Street,
			"neighborhood":     c.Neighborhood,
			"city":             c.City,
			"state":            c.State,
			"number":           c.Number,
			"complement":       zeronull.Text(c.Complement),
			"status":           c.Status,
			"phone":            zeronull.Text(c.Phone),
			"email":            zeronull.Text(c.Email),
			"contact_person":   zeronull.Text(c.ContactPerson),
			"updated_at":       c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID}).
		PlaceholderFormat(sq.Dollar)

	q, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		if isUniqueViolation(err, "cnpj") {
			return entity.ErrDuplicateCNPJ
		}

		return fmt.Errorf("update client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrClientNotFound
	}

	return nil
}

func (r *ClientRepository) AssignUser(ctx context.Context, clientID, userID uuid.UUID, updatedAt time.Time) error {
	const q = `UPDATE clients SET assigned_user_id = $1, updated_at = $2 WHERE id = $3`

	result, err := r.pool.Exec(ctx, q, userID, updatedAt, clientID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrUserNotFound
		}

		return fmt.Errorf("assign user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrClientNotFound
	}

	return nil
}

func (r *ClientRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrClientNotFound
	}

	return nil
}

func selectClients() sq.SelectBuilder {
	return sq.Select(clientColumns...).
		From(clientsTable).
		LeftJoin(assignedUserJoin).
		PlaceholderFormat(sq.Dollar)
}

func applyClientFilter(stmt sq.SelectBuilder, f entity.ClientFilter) sq.SelectBuilder {
	if f.AssignedUserID != nil {
		stmt = stmt.Where(sq.Eq{"c.assigned_user_id": *f.AssignedUserID})
	}

	if f.Name != nil {
		p := likePattern(*f.Name)
		stmt = stmt.Where(sq.Or{
			sq.ILike{"c.store_front_name": p},
			sq.ILike{"c.company_name": p},
		})
	}

	if f.CNPJ != nil {
		stmt = stmt.Where(sq.ILike{"c.cnpj": likePattern(*f.CNPJ)})
	}

	if f.City != nil {
		stmt = stmt.Where(sq.ILike{"c.city": likePattern(*f.City)})
	}

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"c.status": *f.Status})
	}

	if col := f.SortBy.Column(); col != "" {
		return stmt.OrderBy(fmt.Sprintf("%s %s", col, orderOrDefault(f.OrderBy)))
	}

	return stmt.OrderBy("c.created_at DESC")
}

func scanClient(row rowScanner) (entity.Client, error) {
	var (
		c                                 entity.Client
		complement, phone, email, contact zeronull.Text
		assignedName, assignedEmail       zeronull.Text
		assignedRole                      zeronull.Text
	)

	err := row.Scan(
		&c.ID,
		&c.StoreFrontName,
		&c.CNPJ,
		&c.CompanyName,
		&c.CEP,
		&c.Street,
		&c.Neighborhood,
		&c.City,
		&c.State,
		&c.Number,
		&complement,
		&c.Status,
		&phone,
		&email,
		&contact,
		&c.AssignedUserID,
		&c.CreatedAt,
		&c.UpdatedAt,
		&assignedName,
		&assignedEmail,
		&assignedRole,
	)
	if err != nil {
		return entity.Client{}, err
	}

	c.Complement = string(complement)
	c.Phone = string(phone)
	c.Email = string(email)
	c.ContactPerson = string(contact)

	if c.AssignedUserID != nil {
		c.AssignedUser = &entity.UserSummary{
			ID:    *c.AssignedUserID,
			Name:  string(assignedName),
			Email: string(assignedEmail),
			Role:  entity.Role(assignedRole),
		}
	}

	return c, nil
}
