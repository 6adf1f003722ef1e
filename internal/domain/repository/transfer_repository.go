package repository

import (
	"context"
	"time"

	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
)

// TransferDetail é a visão de leitura de uma transferência com os nomes
// resolvidos por JOIN (nome do patrimônio e username de quem transferiu).
type TransferDetail struct {
	ID                string
	PatrimonyID       string
	PatrimonyName     string
	FromDepartment    string
	ToDepartment      string
	Reason            string
	TransferredBy     *string
	TransferredByName *string
	TransferredAt     time.Time
}

// TransferRepository porta de persistência para transferências (append-only).
// GetByID devolve (nil, nil) quando a transferência não existe.
type TransferRepository interface {
	Create(ctx context.Context, t *entity.Transfer) error
	GetByID(ctx context.Context, id string) (*TransferDetail, error)
	// List devolve as transferências mais recentes primeiro; patrimonyID vazio lista todas.
	List(ctx context.Context, patrimonyID string) ([]*TransferDetail, error)
}
