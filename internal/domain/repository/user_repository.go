package repository

import (
	"context"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// Os métodos de leitura devolvem (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByResetToken(ctx context.Context, token string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
	UpdateRole(ctx context.Context, id int64, role string, at time.Time) error

	// RecordLoginSuccess zera o contador de falhas e grava o último login.
	RecordLoginSuccess(ctx context.Context, id int64, at time.Time) error
	// RecordLoginFailure persiste o novo contador e, se for o caso, o bloqueio.
	RecordLoginFailure(ctx context.Context, id int64, attempts int, locked bool, at time.Time) error
	// Unlock limpa flag de bloqueio e contador de tentativas.
	Unlock(ctx context.Context, id int64, at time.Time) error

	UpdatePassword(ctx context.Context, id int64, passwordHash string, at time.Time) error
	SetResetToken(ctx context.Context, id int64, token string, expiry time.Time) error
	ClearResetToken(ctx context.Context, id int64) error
}
