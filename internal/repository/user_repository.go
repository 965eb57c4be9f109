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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool: pool,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, u entity.User) (entity.User, error) {
	const q = `
	INSERT INTO users (id, name, email, password, role, provider, last_login_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, q,
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		u.Role,
		zeronull.Text(u.Provider),
		u.LastLoginAt,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "email") {
			return entity.User{}, entity.ErrDuplicateEmail
		}

		return entity.User{}, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	return r.userBy(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.userBy(ctx, sq.Eq{"email": email})
}

func (r *UserRepository) userBy(ctx context.Context, pred sq.Sqlizer) (entity.User, error) {
	q, args, err := sq.Select(userColumns...).From("users").Where(pred).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return entity.User{}, err
	}

	u, err := scanUser(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}

		return entity.User{}, fmt.Errorf("select user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error) {
	stmt := sq.Select(userColumns...).From("users").PlaceholderFormat(sq.Dollar)
	stmt = applyUserFilter(stmt, f)

	return r.selectUsers(ctx, stmt)
}

func (r *UserRepository) InactiveUsers(ctx context.Context, cutoff time.Time) ([]entity.User, error) {
	stmt := sq.Select(userColumns...).
		From("users").
		Where(sq.Or{sq.Eq{"last_login_at": nil}, sq.Lt{"last_login_at": cutoff}}).
		OrderBy("last_login_at ASC NULLS FIRST").
		PlaceholderFormat(sq.Dollar)

	return r.selectUsers(ctx, stmt)
}

func (r *UserRepository) selectUsers(ctx context.Context, stmt sq.SelectBuilder) ([]entity.User, error) {
	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]entity.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var n int

	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return n, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, u entity.User) error {
	const q = `UPDATE users SET name = $1, email = $2, role = $3, updated_at = $4 WHERE id = $5`

	result, err := r.pool.Exec(ctx, q, u.Name, u.Email, u.Role, u.UpdatedAt, u.ID)
	if err != nil {
		if isUniqueViolation(err, "email") {
			return entity.ErrDuplicateEmail
		}

		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string, updatedAt time.Time) error {
	const q = `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`

	result, err := r.pool.Exec(ctx, q, hash, updatedAt, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	const q = `UPDATE users SET last_login_at = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, q, at, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func applyUserFilter(stmt sq.SelectBuilder, f entity.UserFilter) sq.SelectBuilder {
	if f.Role != nil {
		stmt = stmt.Where(sq.Eq{"role": *f.Role})
	}

	if f.Name != nil {
		stmt = stmt.Where(sq.ILike{"name": likePattern(*f.Name)})
	}

	if f.Email != nil {
		stmt = stmt.Where(sq.ILike{"email": likePattern(*f.Email)})
	}

	if col := f.SortBy.Column(); col != "" {
		stmt = stmt.OrderBy(fmt.Sprintf("%s %s", col, orderOrDefault(f.OrderBy)))
	}

	return stmt
}

func scanUser(row rowScanner) (entity.User, error) {
	var (
		u        entity.User
		provider zeronull.Text
	)

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.Role,
		&provider,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return entity.User{}, err
	}

	u.Provider = string(provider)

	return u, nil
}
