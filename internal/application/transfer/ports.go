package transfer

import (
	"context"

	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação: os repositórios entregues ao
// callback estão atados à mesma tx, e qualquer erro desfaz todos os passos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		transfers repository.TransferRepository,
		patrimonies repository.PatrimonyRepository,
	) error) error
}
