package entity

import "time"

// Transfer é o registro imutável de auditoria de uma movimentação de
// patrimônio entre departamentos. Nunca é atualizado nem excluído diretamente;
// a exclusão só ocorre em cascata quando o patrimônio é removido.
type Transfer struct {
	ID             string
	PatrimonyID    string
	FromDepartment string // capturado do patrimônio no momento da transferência
	ToDepartment   string
	Reason         string
	TransferredBy  *string
	TransferredAt  time.Time
}
