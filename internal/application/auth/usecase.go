package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/jwt"
)

// resetTokenTTL validade do token de redefinição de senha.
const resetTokenTTL = time.Hour

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login com bloqueio por tentativas,
// registro, troca e redefinição de senha, desbloqueio administrativo.
type AuthUseCase struct {
	users  repository.UserRepository
	trail  *audit.Recorder
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, trail *audit.Recorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, trail: trail, jwtCfg: jwtCfg}
}

// Authenticate verifica username/senha e devolve a identidade mínima da sessão.
//
// Toda chamada que encontra a conta muta estado persistido: sucesso zera o
// contador de falhas e grava o último login; falha incrementa o contador e,
// na terceira consecutiva, bloqueia a conta (ErrAccountLockedNow). Conta já
// bloqueada falha antes da verificação do hash (ErrAccountLocked). Username
// inexistente é no-op: nenhum estado fantasma é criado.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*entity.Identity, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Locked {
		return nil, domain.ErrAccountLocked
	}

	now := time.Now()
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		attempts := user.FailedAttempts + 1
		locked := attempts >= entity.MaxLoginAttempts
		if err := uc.users.RecordLoginFailure(ctx, user.ID, attempts, locked, now); err != nil {
			return nil, err
		}
		if locked {
			uc.trail.Record(ctx, nil, "account_locked", "usuarios", &user.ID, nil, nil)
			return nil, domain.ErrAccountLockedNow
		}
		uc.trail.Record(ctx, nil, "login_failed", "usuarios", &user.ID, nil, nil)
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.users.RecordLoginSuccess(ctx, user.ID, now); err != nil {
		return nil, err
	}
	uc.trail.Record(ctx, &user.ID, "login", "usuarios", &user.ID, nil, nil)
	return &entity.Identity{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Login autentica e gera o token JWT da sessão.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, identity.ID, identity.Username, identity.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		ID:       identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
	}, nil
}

// Register cria um usuário: valida username, senha e email (primeira regra
// violada rejeita, antes de qualquer persistência), hasheia com bcrypt e
// persiste. Duplicidade vira ErrDuplicate com o campo ofensor nomeado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	existing, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username: %w", domain.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleFuncionario
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.trail.Record(ctx, nil, "create", "usuarios", &user.ID, nil, toUserResponse(user))
	return toUserResponse(user), nil
}

// ChangePassword troca a senha de um usuário autenticado após conferir a atual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, userID, string(hash), time.Now()); err != nil {
		return err
	}
	uc.trail.Record(ctx, &userID, "update", "usuarios", &userID, nil, nil)
	return nil
}

// RequestPasswordReset gera um token opaco com validade de uma hora para o
// email informado. Devolve ErrUserNotFound se o email não estiver cadastrado.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	token := uuid.New().String()
	if err := uc.users.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword conclui a redefinição: valida o token e sua expiração, aplica
// a política de senha e limpa o token e o bloqueio.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, next string) error {
	if token == "" {
		return domain.ErrInvalidResetToken
	}
	user, err := uc.users.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil || user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return domain.ErrInvalidResetToken
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := uc.users.UpdatePassword(ctx, user.ID, string(hash), now); err != nil {
		return err
	}
	if err := uc.users.ClearResetToken(ctx, user.ID); err != nil {
		return err
	}
	// Redefinir a senha também desbloqueia a conta.
	if err := uc.users.Unlock(ctx, user.ID, now); err != nil {
		return err
	}
	uc.trail.Record(ctx, &user.ID, "update", "usuarios", &user.ID, nil, nil)
	return nil
}

// Unlock limpa o bloqueio e o contador de tentativas (operação administrativa).
func (uc *AuthUseCase) Unlock(ctx context.Context, actorID, userID int64) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.users.Unlock(ctx, userID, time.Now()); err != nil {
		return err
	}
	uc.trail.Record(ctx, &actorID, "unlock", "usuarios", &userID, nil, nil)
	return nil
}

// IsAuthFailure informa se err é uma falha de autenticação esperada
// (credencial errada, conta bloqueada ou usuário inexistente), em oposição a
// uma falha de armazenamento.
func IsAuthFailure(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrInvalidCredentials) ||
		errors.Is(err, domain.ErrAccountLocked) ||
		errors.Is(err, domain.ErrAccountLockedNow)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		Locked:         u.Locked,
		FailedAttempts: u.FailedAttempts,
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
