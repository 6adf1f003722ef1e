package dto

import (
	"time"

	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// CreateTransferRequest entrada para transferência de patrimônio entre
// departamentos. O departamento de origem vem do próprio patrimônio.
type CreateTransferRequest struct {
	PatrimonyID  string `json:"patrimony_id"`
	ToDepartment string `json:"to_department"`
	Reason       string `json:"reason"`
}

// TransferResponse saída de uma transferência com os campos resolvidos por
// JOIN (nome do bem e do usuário responsável).
type TransferResponse struct {
	ID                string    `json:"id"`
	PatrimonyID       string    `json:"patrimony_id"`
	PatrimonyName     string    `json:"patrimony_name"`
	FromDepartment    string    `json:"from_department"`
	ToDepartment      string    `json:"to_department"`
	Reason            string    `json:"reason"`
	TransferredBy     *string   `json:"transferred_by"`
	TransferredByName *string   `json:"transferred_by_name"`
	TransferredAt     time.Time `json:"transferred_at"`
}

// NewTransferResponse converte o detalhe do repositório para a visão pública.
func NewTransferResponse(d *repository.TransferDetail) TransferResponse {
	return TransferResponse{
		ID:                d.ID,
		PatrimonyID:       d.PatrimonyID,
		PatrimonyName:     d.PatrimonyName,
		FromDepartment:    d.FromDepartment,
		ToDepartment:      d.ToDepartment,
		Reason:            d.Reason,
		TransferredBy:     d.TransferredBy,
		TransferredByName: d.TransferredByName,
		TransferredAt:     d.TransferredAt,
	}
}

// NewTransferResponses converte uma lista, devolvendo slice vazio (não nil).
func NewTransferResponses(items []*repository.TransferDetail) []TransferResponse {
	out := make([]TransferResponse, 0, len(items))
	for _, d := range items {
		out = append(out, NewTransferResponse(d))
	}
	return out
}
