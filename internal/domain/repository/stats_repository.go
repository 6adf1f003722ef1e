package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DepartmentStats agregado por departamento (ordenado por count decrescente).
type DepartmentStats struct {
	Department string
	Count      int64
	TotalValue decimal.Decimal
}

// StatsRepository consultas de agregação somente leitura sobre patrimônios.
// As somas monetárias permanecem em NUMERIC no banco e chegam como decimal,
// nunca acumuladas em ponto flutuante.
type StatsRepository interface {
	// Totals devolve contagem e soma de valor, opcionalmente filtradas por departamento.
	Totals(ctx context.Context, department string) (int64, decimal.Decimal, error)
	// CountByStatus devolve a contagem por status (todos os status, inclusive não reconhecidos).
	CountByStatus(ctx context.Context, department string) (map[string]int64, error)
	// ByDepartment devolve o agregado por departamento, ordenado por contagem decrescente.
	ByDepartment(ctx context.Context) ([]DepartmentStats, error)
}
