package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

const transferDetailQuery = `
	SELECT t.id, t.patrimony_id, p.name AS patrimony_name, t.from_department, t.to_department,
		t.reason, t.transferred_by, u.username AS transferred_by_name, t.transferred_at
	FROM transfers t
	JOIN patrimonies p ON t.patrimony_id = p.id
	LEFT JOIN users u ON t.transferred_by = u.id`

// TransferRepo implementação da porta TransferRepository sobre PostgreSQL.
type TransferRepo struct {
	db querier
}

// NewTransferRepository constrói o adaptador de persistência de transferências.
func NewTransferRepository(db querier) *TransferRepo {
	return &TransferRepo{db: db}
}

// Create insere o registro de transferência (append-only).
func (r *TransferRepo) Create(ctx context.Context, t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, patrimony_id, from_department, to_department, reason, transferred_by, transferred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.PatrimonyID, t.FromDepartment, t.ToDepartment, t.Reason, t.TransferredBy, t.TransferredAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtém a visão detalhada de uma transferência; (nil, nil) se não existir.
func (r *TransferRepo) GetByID(ctx context.Context, id string) (*repository.TransferDetail, error) {
	var d repository.TransferDetail
	err := r.db.QueryRow(ctx, transferDetailQuery+` WHERE t.id = $1`, id).Scan(
		&d.ID, &d.PatrimonyID, &d.PatrimonyName, &d.FromDepartment, &d.ToDepartment,
		&d.Reason, &d.TransferredBy, &d.TransferredByName, &d.TransferredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer by id: %w", err)
	}
	return &d, nil
}

// List devolve as transferências mais recentes primeiro, opcionalmente
// filtradas por patrimônio.
func (r *TransferRepo) List(ctx context.Context, patrimonyID string) ([]*repository.TransferDetail, error) {
	query := transferDetailQuery
	var args []any
	if patrimonyID != "" {
		query += ` WHERE t.patrimony_id = $1`
		args = append(args, patrimonyID)
	}
	query += ` ORDER BY t.transferred_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var list []*repository.TransferDetail
	for rows.Next() {
		var d repository.TransferDetail
		if err := rows.Scan(&d.ID, &d.PatrimonyID, &d.PatrimonyName, &d.FromDepartment,
			&d.ToDepartment, &d.Reason, &d.TransferredBy, &d.TransferredByName, &d.TransferredAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
