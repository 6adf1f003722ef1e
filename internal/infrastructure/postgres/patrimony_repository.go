package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

var _ repository.PatrimonyRepository = (*PatrimonyRepo)(nil)

const patrimonyColumns = `id, plate, name, description, acquisition_date, value, department, status,
	invoice_number, commitment_number, denf_se_number, invoice_file, commitment_file, denf_se_file,
	image_url, created_by, created_at, updated_at`

// PatrimonyRepo implementação da porta PatrimonyRepository sobre PostgreSQL.
type PatrimonyRepo struct {
	db querier
}

// NewPatrimonyRepository constrói o adaptador de persistência de patrimônios.
func NewPatrimonyRepository(db querier) *PatrimonyRepo {
	return &PatrimonyRepo{db: db}
}

// Create persiste um novo patrimônio. Placa duplicada vira domain.ErrDuplicate.
func (r *PatrimonyRepo) Create(ctx context.Context, p *entity.Patrimony) error {
	query := `
		INSERT INTO patrimonies (id, plate, name, description, acquisition_date, value, department,
			status, invoice_number, commitment_number, denf_se_number, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Plate, p.Name, p.Description, p.AcquisitionDate, p.Value, p.Department,
		p.Status, p.InvoiceNumber, p.CommitmentNumber, p.DenfSeNumber, p.CreatedBy,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert patrimony: %w", err)
	}
	return nil
}

// GetByID obtém um patrimônio por ID; (nil, nil) se não existir.
func (r *PatrimonyRepo) GetByID(ctx context.Context, id string) (*entity.Patrimony, error) {
	query := `SELECT ` + patrimonyColumns + ` FROM patrimonies WHERE id = $1`
	var p entity.Patrimony
	err := r.db.QueryRow(ctx, query, id).Scan(scanTargets(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patrimony by id: %w", err)
	}
	return &p, nil
}

// List devolve os patrimônios mais recentes primeiro, com filtros opcionais
// de departamento e status combinados com AND.
func (r *PatrimonyRepo) List(ctx context.Context, filter repository.PatrimonyFilter) ([]*entity.Patrimony, error) {
	query := `SELECT ` + patrimonyColumns + ` FROM patrimonies`
	var args []any
	var where []string
	if filter.Department != "" {
		args = append(args, filter.Department)
		where = append(where, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list patrimonies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Patrimony
	for rows.Next() {
		var p entity.Patrimony
		if err := rows.Scan(scanTargets(&p)...); err != nil {
			return nil, fmt.Errorf("scan patrimony: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update substitui os campos editáveis e renova updated_at.
func (r *PatrimonyRepo) Update(ctx context.Context, p *entity.Patrimony) (bool, error) {
	query := `
		UPDATE patrimonies
		SET plate = $2, name = $3, description = $4, acquisition_date = $5, value = $6,
			department = $7, status = $8, invoice_number = $9, commitment_number = $10,
			denf_se_number = $11, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Plate, p.Name, p.Description, p.AcquisitionDate, p.Value,
		p.Department, p.Status, p.InvoiceNumber, p.CommitmentNumber, p.DenfSeNumber,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update patrimony: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete remove o patrimônio; transfers associadas caem em cascata no banco.
func (r *PatrimonyRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM patrimonies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete patrimony: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateDepartment troca o departamento e renova updated_at (usado dentro da
// transação de transferência).
func (r *PatrimonyRepo) UpdateDepartment(ctx context.Context, id, department string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE patrimonies SET department = $1, updated_at = NOW() WHERE id = $2`,
		department, id,
	)
	if err != nil {
		return fmt.Errorf("update patrimony department: %w", err)
	}
	return nil
}

// SetAttachment grava a URL pública do arquivo na coluna indicada.
// O nome da coluna vem de um enum fechado, nunca de entrada do cliente.
func (r *PatrimonyRepo) SetAttachment(ctx context.Context, id string, field entity.AttachmentField, url string) (bool, error) {
	switch field {
	case entity.AttachmentImage, entity.AttachmentInvoice, entity.AttachmentCommitment, entity.AttachmentDenfSe:
	default:
		return false, domain.ErrInvalidDocType
	}
	query := fmt.Sprintf(`UPDATE patrimonies SET %s = $1, updated_at = NOW() WHERE id = $2`, field)
	tag, err := r.db.Exec(ctx, query, url, id)
	if err != nil {
		return false, fmt.Errorf("set attachment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Departments devolve os departamentos distintos em ordem alfabética.
func (r *PatrimonyRepo) Departments(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT department FROM patrimonies ORDER BY department`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// scanTargets devolve os destinos de Scan na mesma ordem de patrimonyColumns.
func scanTargets(p *entity.Patrimony) []any {
	return []any{
		&p.ID, &p.Plate, &p.Name, &p.Description, &p.AcquisitionDate, &p.Value,
		&p.Department, &p.Status, &p.InvoiceNumber, &p.CommitmentNumber, &p.DenfSeNumber,
		&p.InvoiceFile, &p.CommitmentFile, &p.DenfSeFile, &p.ImageURL, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt,
	}
}
