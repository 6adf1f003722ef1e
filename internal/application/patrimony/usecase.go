package patrimony

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// PatrimonyUseCase casos de uso de cadastro de patrimônio (CRUD e consultas).
type PatrimonyUseCase struct {
	repo repository.PatrimonyRepository
}

// NewPatrimonyUseCase constrói o caso de uso com o porto de persistência.
func NewPatrimonyUseCase(repo repository.PatrimonyRepository) *PatrimonyUseCase {
	return &PatrimonyUseCase{repo: repo}
}

// Create valida e persiste um patrimônio novo. Placa repetida devolve
// domain.ErrDuplicate; createdBy vem do usuário autenticado.
func (uc *PatrimonyUseCase) Create(ctx context.Context, in dto.CreatePatrimonyRequest, createdBy string) (*dto.PatrimonyResponse, error) {
	plate := strings.TrimSpace(in.Plate)
	name := strings.TrimSpace(in.Name)
	if plate == "" {
		return nil, fmt.Errorf("%w: Plate é obrigatório", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: Name é obrigatório", domain.ErrInvalidInput)
	}
	value := decimal.NewFromFloat(in.Value)
	if value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: Value deve ser maior que zero", domain.ErrInvalidInput)
	}
	acquisitionDate, err := dto.ParseAcquisitionDate(in.AcquisitionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: acquisition_date deve estar no formato YYYY-MM-DD", domain.ErrInvalidInput)
	}

	status := entity.StatusActive
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}

	now := time.Now()
	p := &entity.Patrimony{
		ID:               uuid.NewString(),
		Plate:            plate,
		Name:             name,
		Description:      strings.TrimSpace(in.Description),
		AcquisitionDate:  acquisitionDate,
		Value:            value,
		Department:       strings.TrimSpace(in.Department),
		Status:           status,
		InvoiceNumber:    in.InvoiceNumber,
		CommitmentNumber: in.CommitmentNumber,
		DenfSeNumber:     in.DenfSeNumber,
		CreatedBy:        &createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	resp := dto.NewPatrimonyResponse(p)
	return &resp, nil
}

// GetByID busca um patrimônio; domain.ErrNotFound quando não existe.
func (uc *PatrimonyUseCase) GetByID(ctx context.Context, id string) (*dto.PatrimonyResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewPatrimonyResponse(p)
	return &resp, nil
}

// List lista patrimônios com filtros opcionais por departamento e status.
func (uc *PatrimonyUseCase) List(ctx context.Context, filter repository.PatrimonyFilter) ([]dto.PatrimonyResponse, error) {
	items, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPatrimonyResponses(items), nil
}

// Update aplica uma atualização parcial: só os campos presentes no corpo
// substituem os atuais; os demais são preservados.
func (uc *PatrimonyUseCase) Update(ctx context.Context, id string, in dto.UpdatePatrimonyRequest) (*dto.PatrimonyResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Plate != nil {
		plate := strings.TrimSpace(*in.Plate)
		if plate == "" {
			return nil, fmt.Errorf("%w: Plate é obrigatório", domain.ErrInvalidInput)
		}
		p.Plate = plate
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: Name é obrigatório", domain.ErrInvalidInput)
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.AcquisitionDate != nil {
		d, err := dto.ParseAcquisitionDate(*in.AcquisitionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: acquisition_date deve estar no formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		p.AcquisitionDate = d
	}
	if in.Value != nil {
		value := decimal.NewFromFloat(*in.Value)
		if value.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: Value deve ser maior que zero", domain.ErrInvalidInput)
		}
		p.Value = value
	}
	if in.Department != nil {
		p.Department = strings.TrimSpace(*in.Department)
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.InvoiceNumber != nil {
		p.InvoiceNumber = in.InvoiceNumber
	}
	if in.CommitmentNumber != nil {
		p.CommitmentNumber = in.CommitmentNumber
	}
	if in.DenfSeNumber != nil {
		p.DenfSeNumber = in.DenfSeNumber
	}
	p.UpdatedAt = time.Now()

	ok, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	resp := dto.NewPatrimonyResponse(p)
	return &resp, nil
}

// Delete remove o patrimônio; as transferências associadas caem em cascata.
func (uc *PatrimonyUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Departments lista os departamentos distintos que possuem patrimônio.
func (uc *PatrimonyUseCase) Departments(ctx context.Context) ([]string, error) {
	departments, err := uc.repo.Departments(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []string{}
	}
	return departments, nil
}
