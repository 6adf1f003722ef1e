package transfer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// TransferUseCase movimentação de patrimônio entre departamentos. O registro
// da transferência e a mudança de custódia acontecem na mesma transação.
type TransferUseCase struct {
	patrimonies repository.PatrimonyRepository
	transfers   repository.TransferRepository
	tx          TxRunner
}

// NewTransferUseCase constrói o caso de uso com os portos de persistência.
func NewTransferUseCase(
	patrimonies repository.PatrimonyRepository,
	transfers repository.TransferRepository,
	tx TxRunner,
) *TransferUseCase {
	return &TransferUseCase{patrimonies: patrimonies, transfers: transfers, tx: tx}
}

// Create transfere um patrimônio para outro departamento. O departamento de
// origem é o atual do bem; transferir para o mesmo departamento é rejeitado.
func (uc *TransferUseCase) Create(ctx context.Context, in dto.CreateTransferRequest, transferredBy string) (*dto.TransferResponse, error) {
	toDepartment := strings.TrimSpace(in.ToDepartment)
	if toDepartment == "" {
		return nil, fmt.Errorf("%w: to_department é obrigatório", domain.ErrInvalidInput)
	}

	p, err := uc.patrimonies.GetByID(ctx, in.PatrimonyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Department == toDepartment {
		return nil, domain.ErrSameDepartment
	}

	transfer := &entity.Transfer{
		ID:             uuid.NewString(),
		PatrimonyID:    p.ID,
		FromDepartment: p.Department,
		ToDepartment:   toDepartment,
		Reason:         strings.TrimSpace(in.Reason),
		TransferredBy:  &transferredBy,
		TransferredAt:  time.Now(),
	}

	err = uc.tx.Run(ctx, func(transfers repository.TransferRepository, patrimonies repository.PatrimonyRepository) error {
		if err := transfers.Create(ctx, transfer); err != nil {
			return err
		}
		return patrimonies.UpdateDepartment(ctx, p.ID, toDepartment)
	})
	if err != nil {
		return nil, err
	}

	detail, err := uc.transfers.GetByID(ctx, transfer.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewTransferResponse(detail)
	return &resp, nil
}

// GetByID busca uma transferência; domain.ErrNotFound quando não existe.
func (uc *TransferUseCase) GetByID(ctx context.Context, id string) (*dto.TransferResponse, error) {
	detail, err := uc.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewTransferResponse(detail)
	return &resp, nil
}

// List devolve o histórico de transferências, opcionalmente de um único
// patrimônio, da mais recente para a mais antiga.
func (uc *TransferUseCase) List(ctx context.Context, patrimonyID string) ([]dto.TransferResponse, error) {
	items, err := uc.transfers.List(ctx, patrimonyID)
	if err != nil {
		return nil, err
	}
	return dto.NewTransferResponses(items), nil
}
