package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password_hash, email, role, failed_attempts,
	locked, last_login, reset_token, reset_token_expiry, created_at, updated_at`

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var email *string
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &email, &u.Role, &u.FailedAttempts,
		&u.Locked, &u.LastLogin, &u.ResetToken, &u.ResetTokenExpiry,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if email != nil {
		u.Email = *email
	}
	return &u, nil
}

// Create persiste um novo usuário e preenche user.ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (username, password_hash, email, role, failed_attempts, locked, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Email, user.Role,
		user.FailedAttempts, user.Locked, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return translateWriteError("insert usuario", err)
	}
	return nil
}

// GetByID obtém um usuário por id. Devolve (nil, nil) quando não existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get usuario", err)
	}
	return u, nil
}

// GetByUsername obtém um usuário por username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get usuario by username", err)
	}
	return u, nil
}

// GetByEmail obtém um usuário pelo e-mail cadastrado.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get usuario by email", err)
	}
	return u, nil
}

// GetByResetToken obtém o usuário dono de um token de recuperação.
func (r *UserRepo) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE reset_token = $1`, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get usuario by reset token", err)
	}
	return u, nil
}

// List devolve usuários paginados ordenados por username.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+userColumns+` FROM usuarios ORDER BY username LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, domain.NewStorageError("list usuarios", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, domain.NewStorageError("scan usuario", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list usuarios", err)
	}
	return users, nil
}

// Delete remove o usuário.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return translateWriteError("delete usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateRole troca o papel do usuário.
func (r *UserRepo) UpdateRole(ctx context.Context, id int64, role string, at time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE usuarios SET role = $1, updated_at = $2 WHERE id = $3`, role, at, id)
	if err != nil {
		return translateWriteError("update usuario role", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RecordLoginSuccess zera o contador de falhas e grava o último login.
func (r *UserRepo) RecordLoginSuccess(ctx context.Context, id int64, at time.Time) error {
	_, err := r.q.Exec(ctx, `
		UPDATE usuarios
		SET failed_attempts = 0, last_login = $1, updated_at = $1
		WHERE id = $2`, at, id)
	if err != nil {
		return domain.NewStorageError("record login success", err)
	}
	return nil
}

// RecordLoginFailure persiste o contador de falhas e o eventual bloqueio.
func (r *UserRepo) RecordLoginFailure(ctx context.Context, id int64, attempts int, locked bool, at time.Time) error {
	_, err := r.q.Exec(ctx, `
		UPDATE usuarios
		SET failed_attempts = $1, locked = $2, updated_at = $3
		WHERE id = $4`, attempts, locked, at, id)
	if err != nil {
		return domain.NewStorageError("record login failure", err)
	}
	return nil
}

// Unlock limpa flag de bloqueio e contador de tentativas.
func (r *UserRepo) Unlock(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE usuarios
		SET locked = FALSE, failed_attempts = 0, updated_at = $1
		WHERE id = $2`, at, id)
	if err != nil {
		return domain.NewStorageError("unlock usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword troca o hash da senha.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string, at time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE usuarios SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, at, id)
	if err != nil {
		return domain.NewStorageError("update usuario password", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetResetToken grava token de recuperação e validade.
func (r *UserRepo) SetResetToken(ctx context.Context, id int64, token string, expiry time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE usuarios SET reset_token = $1, reset_token_expiry = $2, updated_at = now() WHERE id = $3`,
		token, expiry, id)
	if err != nil {
		return domain.NewStorageError("set reset token", err)
	}
	return nil
}

// ClearResetToken anula token de recuperação e validade.
func (r *UserRepo) ClearResetToken(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE usuarios SET reset_token = NULL, reset_token_expiry = NULL, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return domain.NewStorageError("clear reset token", err)
	}
	return nil
}
