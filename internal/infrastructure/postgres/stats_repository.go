package postgres

import (
	"context"
	"fmt"

	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de agregação somente leitura sobre patrimônios.
// As somas ficam em NUMERIC no banco e são lidas como decimal; a conversão
// para float acontece apenas na camada de resposta.
type StatsRepo struct {
	db querier
}

// NewStatsRepository constrói o adaptador de estatísticas.
func NewStatsRepository(db querier) *StatsRepo {
	return &StatsRepo{db: db}
}

// Totals devolve contagem total e soma de valor, com filtro opcional de departamento.
func (r *StatsRepo) Totals(ctx context.Context, department string) (int64, decimal.Decimal, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(value), 0) FROM patrimonies`
	var args []any
	if department != "" {
		query += ` WHERE department = $1`
		args = append(args, department)
	}

	var count int64
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("stats totals: %w", err)
	}
	return count, total, nil
}

// CountByStatus devolve a contagem por status, incluindo status não reconhecidos.
func (r *StatsRepo) CountByStatus(ctx context.Context, department string) (map[string]int64, error) {
	query := `SELECT status, COUNT(*) FROM patrimonies`
	var args []any
	if department != "" {
		query += ` WHERE department = $1`
		args = append(args, department)
	}
	query += ` GROUP BY status`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// ByDepartment devolve contagem e soma de valor por departamento, ordenado
// por contagem decrescente.
func (r *StatsRepo) ByDepartment(ctx context.Context) ([]repository.DepartmentStats, error) {
	query := `
		SELECT department, COUNT(*) AS count, COALESCE(SUM(value), 0) AS total_value
		FROM patrimonies
		GROUP BY department
		ORDER BY count DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats by department: %w", err)
	}
	defer rows.Close()

	var list []repository.DepartmentStats
	for rows.Next() {
		var d repository.DepartmentStats
		if err := rows.Scan(&d.Department, &d.Count, &d.TotalValue); err != nil {
			return nil, fmt.Errorf("scan department stats: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
