package repository

import (
	"context"

	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
)

// PatrimonyFilter filtros opcionais de listagem (combinados com AND).
type PatrimonyFilter struct {
	Department string
	Status     string
}

// PatrimonyRepository porta de persistência para patrimônios.
// GetByID devolve (nil, nil) quando o patrimônio não existe.
type PatrimonyRepository interface {
	Create(ctx context.Context, p *entity.Patrimony) error
	GetByID(ctx context.Context, id string) (*entity.Patrimony, error)
	List(ctx context.Context, filter PatrimonyFilter) ([]*entity.Patrimony, error)
	// Update substitui os campos editáveis e renova updated_at.
	// Devolve false se nenhuma linha foi afetada.
	Update(ctx context.Context, p *entity.Patrimony) (bool, error)
	// Delete remove o registro (hard delete; transfers caem em cascata).
	Delete(ctx context.Context, id string) (bool, error)
	// UpdateDepartment troca o departamento e renova updated_at (passo da transferência).
	UpdateDepartment(ctx context.Context, id, department string) error
	// SetAttachment grava a referência de arquivo na coluna indicada e renova updated_at.
	SetAttachment(ctx context.Context, id string, field entity.AttachmentField, url string) (bool, error)
	// Departments devolve os departamentos distintos, em ordem alfabética.
	Departments(ctx context.Context) ([]string, error)
}
