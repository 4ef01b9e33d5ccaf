package usecase

import (
	"context"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/audit"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/auth"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/application/dto"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	trail *audit.Recorder
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository, trail *audit.Recorder) *ClientUseCase {
	return &ClientUseCase{repo: repo, trail: trail}
}

// Create cria um cliente. CPF e email, quando presentes, são únicos
// (a constraint do banco é a autoridade final; duplicata vira ErrDuplicate).
func (uc *ClientUseCase) Create(ctx context.Context, actorID *int64, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != nil && *in.Email != "" {
		if err := auth.ValidateEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	client := &entity.Client{
		Name:      in.Name,
		CPF:       in.CPF,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	uc.trail.Record(ctx, actorID, "create", "clientes", &client.ID, nil, client)
	return toClientResponse(client), nil
}

// GetByID obtém um cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return toClientResponse(client), nil
}

// Update atualiza os campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, actorID *int64, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	before := *client
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.CPF != nil {
		client.CPF = in.CPF
	}
	if in.Email != nil {
		if *in.Email != "" {
			if err := auth.ValidateEmail(*in.Email); err != nil {
				return nil, err
			}
		}
		client.Email = in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	uc.trail.Record(ctx, actorID, "update", "clientes", &client.ID, &before, client)
	return toClientResponse(client), nil
}

// List lista clientes com paginação.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um cliente. Vendas associadas ficam com cliente nulo
// (SET NULL no schema); não há cascata sobre vendas.
func (uc *ClientUseCase) Delete(ctx context.Context, actorID *int64, id int64) error {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.trail.Record(ctx, actorID, "delete", "clientes", &id, client, nil)
	return nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
