package usecase

import (
	"context"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

// UserUseCase operações administrativas sobre usuários (listar, remover,
// trocar papel). Registro, login e desbloqueio vivem em auth.
type UserUseCase struct {
	repo  repository.UserRepository
	trail *audit.Recorder
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository, trail *audit.Recorder) *UserUseCase {
	return &UserUseCase{repo: repo, trail: trail}
}

// List lista usuários com paginação.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateRole troca o papel de um usuário.
func (uc *UserUseCase) UpdateRole(ctx context.Context, actorID int64, id int64, role string) error {
	if role != entity.RoleAdmin && role != entity.RoleFuncionario {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.UpdateRole(ctx, id, role, time.Now()); err != nil {
		return err
	}
	uc.trail.Record(ctx, &actorID, "update", "usuarios", &id, nil, nil)
	return nil
}

// Delete remove um usuário (exclusão administrativa direta).
func (uc *UserUseCase) Delete(ctx context.Context, actorID int64, id int64) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.trail.Record(ctx, &actorID, "delete", "usuarios", &id, toUserResponse(user), nil)
	return nil
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
