package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	clock clock.Clock
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, clk clock.Clock) *ClientUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	return &ClientUseCase{repo: repo, clock: clk}
}

// Create crea un nuevo cliente.
func (uc *ClientUseCase) Create(ctx context.Context, companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	now := uc.clock.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		ICE:       strings.TrimSpace(in.ICE),
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get obtiene un cliente de la empresa.
func (uc *ClientUseCase) Get(ctx context.Context, companyID, id string) (*dto.ClientResponse, error) {
	client, err := loadClient(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes de la empresa; search filtra por nombre o ICE.
func (uc *ClientUseCase) List(ctx context.Context, companyID, search string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update modifica los campos enviados.
func (uc *ClientUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := loadClient(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	applyString(&client.Name, in.Name)
	applyString(&client.ICE, in.ICE)
	applyString(&client.Address, in.Address)
	applyString(&client.Phone, in.Phone)
	applyString(&client.Email, in.Email)
	client.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina el cliente. Si tiene documentos el repositorio devuelve domain.ErrConflict.
func (uc *ClientUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := loadClient(ctx, uc.repo, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		ICE:       c.ICE,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}
